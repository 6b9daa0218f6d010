package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SpinResult contains metrics for a single spin request
type SpinResult struct {
	UserID       int64
	StatusCode   int
	PrizeKey     string
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	Completed     int
	Won           int
	Rejected      int
	Failed        int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	PrizeCounts   map[string]int
	ErrorCounts   map[string]int
	Lock          sync.Mutex
}

type client struct {
	http          *http.Client
	baseURL       string
	botToken      string
	internalToken string
}

func main() {
	concurrency := flag.Int("c", 8, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of spins to attempt")
	userIDsStr := flag.String("u", "1001,1002,1003", "Comma-separated Telegram user ids to spin as")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	botToken := flag.String("bot-token", "", "Bot token used to sign initData")
	internalToken := flag.String("internal-token", "", "Token for the internal payment endpoint")
	topUp := flag.Int64("topup", 1000, "Stars credited to every user before the run, 0 to skip")
	rouletteID := flag.String("roulette", "", "Case id to spin, empty for the default case")
	delayMs := flag.Int("delay", 0, "Delay between requests of one worker in milliseconds")
	flag.Parse()

	if *botToken == "" {
		fmt.Println("-bot-token is required to sign initData")
		return
	}

	var userIDs []int64
	for _, s := range strings.Split(*userIDsStr, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err == nil && id > 0 {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []int64{1001}
	}

	cl := &client{
		http:          &http.Client{Timeout: 10 * time.Second},
		baseURL:       strings.TrimRight(*baseURL, "/"),
		botToken:      *botToken,
		internalToken: *internalToken,
	}

	fmt.Printf("Spinning as %d users: %v\n", len(userIDs), userIDs)
	fmt.Printf("Concurrency: %d goroutines, %d spins\n", *concurrency, *totalRequests)

	before := map[int64]int64{}
	runID := time.Now().UnixNano()
	for _, id := range userIDs {
		if *topUp > 0 {
			chargeID := fmt.Sprintf("load-%d-%d", runID, id)
			if err := cl.confirmPayment(id, chargeID, *topUp); err != nil {
				fmt.Printf("Top up for user %d failed: %v\n", id, err)
				return
			}
		}
		balance, err := cl.balance(id)
		if err != nil {
			fmt.Printf("Profile for user %d failed: %v\n", id, err)
			return
		}
		before[id] = balance
	}

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  map[int]int{},
		PrizeCounts:   map[string]int{},
		ErrorCounts:   map[string]int{},
	}

	jobs := make(chan int, *totalRequests)
	results := make(chan SpinResult, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	startTime := time.Now()
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				results <- cl.spin(userIDs[rand.IntN(len(userIDs))], *rouletteID)
			}
		}()
	}

	ticker := time.NewTicker(time.Second)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				stats.Lock.Lock()
				fmt.Printf("Progress: %d/%d spins\n", stats.Completed, stats.TotalRequests)
				stats.Lock.Unlock()
			case <-done:
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()
	for r := range results {
		stats.record(r)
	}
	ticker.Stop()
	close(done)
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	checkBalances(cl, userIDs, before)
}

func (s *TestStats) record(r SpinResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.Completed++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	switch {
	case r.Error != nil:
		s.Failed++
		s.ErrorCounts[r.Error.Error()]++
	case r.StatusCode == http.StatusOK:
		s.Won++
		s.PrizeCounts[r.PrizeKey]++
	case r.StatusCode < http.StatusInternalServerError:
		s.Rejected++
	default:
		s.Failed++
	}
	s.StatusCounts[r.StatusCode]++
}

// initData builds a signed Mini App initData string for userID
func (c *client) initData(userID int64) string {
	user, _ := json.Marshal(map[string]any{"id": userID, "first_name": "load"})
	values := url.Values{
		"auth_date": {strconv.FormatInt(time.Now().Unix(), 10)},
		"query_id":  {"load-test"},
		"user":      {string(user)},
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(c.botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}

func (c *client) do(req *http.Request, out any) (int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (c *client) spin(userID int64, rouletteID string) SpinResult {
	payload, _ := json.Marshal(map[string]string{"roulette_id": rouletteID})
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/spin", bytes.NewReader(payload))
	if err != nil {
		return SpinResult{UserID: userID, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tg-Init-Data", c.initData(userID))

	var body struct {
		PrizeKey string `json:"prize_key"`
	}
	start := time.Now()
	status, err := c.do(req, &body)
	return SpinResult{
		UserID:       userID,
		StatusCode:   status,
		PrizeKey:     body.PrizeKey,
		ResponseTime: time.Since(start),
		Error:        err,
	}
}

func (c *client) confirmPayment(userID int64, chargeID string, amount int64) error {
	q := url.Values{
		"user_id":                    {strconv.FormatInt(userID, 10)},
		"telegram_payment_charge_id": {chargeID},
		"total_amount":               {strconv.FormatInt(amount, 10)},
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/internal/payment/confirm?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	if c.internalToken != "" {
		req.Header.Set("X-Internal-Token", c.internalToken)
	}
	status, err := c.do(req, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("HTTP status code %d", status)
	}
	return nil
}

func (c *client) balance(userID int64) (int64, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/me", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("X-Tg-Init-Data", c.initData(userID))

	var body struct {
		Balance int64 `json:"balance"`
	}
	status, err := c.do(req, &body)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("HTTP status code %d", status)
	}
	return body.Balance, nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= SPIN RESULTS =================")
	fmt.Printf("Spins attempted:     %d\n", stats.Completed)
	fmt.Printf("Settled:             %d\n", stats.Won)
	fmt.Printf("Rejected (4xx):      %d\n", stats.Rejected)
	fmt.Printf("Failed:              %d\n", stats.Failed)
	fmt.Printf("Total time:          %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Spins per second:    %.2f\n", float64(stats.Completed)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v  P50: %v  P90: %v  P99: %v\n",
		avg, percentile(sorted, 50), percentile(sorted, 90), percentile(sorted, 99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, n := range stats.StatusCounts {
		fmt.Printf("%-5d: %d\n", code, n)
	}

	if stats.Won > 0 {
		fmt.Println("\n----------------- PRIZE DISTRIBUTION -----------------")
		keys := make([]string, 0, len(stats.PrizeCounts))
		for k := range stats.PrizeCounts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n := stats.PrizeCounts[k]
			fmt.Printf("%-15s: %d (%.1f%%)\n", k, n, float64(n)/float64(stats.Won)*100)
		}
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for msg, n := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, n)
		}
	}
}

// checkBalances fails loudly when a balance went negative under load
func checkBalances(cl *client, userIDs []int64, before map[int64]int64) {
	fmt.Println("\n----------------- BALANCES -----------------")
	for _, id := range userIDs {
		after, err := cl.balance(id)
		if err != nil {
			fmt.Printf("User %d: %v\n", id, err)
			continue
		}
		mark := "ok"
		if after < 0 {
			mark = "NEGATIVE"
		}
		fmt.Printf("User %d: %d -> %d (%s)\n", id, before[id], after, mark)
	}
}
