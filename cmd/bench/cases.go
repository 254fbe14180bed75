// README: Bench cases; endpoint contract checks, live assistant scenarios, intent counters and load.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	statusPass = "PASS"
	statusFail = "FAIL"
	statusSkip = "SKIP"

	intentCountsKey = "compass:intent_counts"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 45 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency.Round(time.Millisecond))
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.redis != nil {
		_ = r.redis.Close()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: Redis connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: statusSkip, Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				return Result{Status: statusPass}
			},
		},
		getCase("API: usage index", base+"/", http.StatusOK),
		getCase("API: health", base+"/health", http.StatusOK),

		rawCase("Assistant: empty body -> 400", base+"/ai_assistant", `{}`, http.StatusBadRequest),
		rawCase("Assistant: invalid json -> 400", base+"/ai_assistant", `{"query":`, http.StatusBadRequest),

		liveCase("Assistant: places search", base, map[string]any{
			"query": "Find restaurants near Kochi",
		}, "places_search", func(env envelope) string {
			if len(env.Places) > 5 {
				return fmt.Sprintf("places=%d exceeds cap", len(env.Places))
			}
			return ""
		}),
		liveCase("Assistant: directions with extraction", base, map[string]any{
			"query": "How to get from Kochi to Trivandrum?",
		}, "directions", func(env envelope) string {
			if env.Directions == nil {
				return "no directions returned: " + env.Reply
			}
			return ""
		}),
		liveCase("Assistant: directions without endpoints", base, map[string]any{
			"query": "Give me directions",
		}, "directions", func(env envelope) string {
			if env.Directions != nil {
				return "directions returned without endpoints"
			}
			return ""
		}),
		liveCase("Assistant: geocode", base, map[string]any{
			"query": "What are the coordinates of Kochi?",
		}, "geocode", nil),
		liveCase("Assistant: general chat", base, map[string]any{
			"query": "What is the capital of France?",
		}, "general", func(env envelope) string {
			if strings.TrimSpace(env.Reply) == "" {
				return "empty reply"
			}
			return ""
		}),

		{
			Name: "Stats: endpoint",
			Run: func(ctx context.Context, r *Runner) Result {
				start := time.Now()
				code, _, err := r.get(ctx, base+"/api/stats/intents")
				if err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				if r.redis == nil && code == http.StatusServiceUnavailable {
					return Result{Status: statusPass, Latency: time.Since(start), Note: "stats disabled"}
				}
				if code != http.StatusOK {
					return Result{Status: statusFail, Note: fmt.Sprintf("status=%d", code)}
				}
				return Result{Status: statusPass, Latency: time.Since(start)}
			},
		},
		{
			Name: "Stats: counters recorded in redis",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: statusSkip, Note: "redis not configured"}
				}
				if !r.cfg.LiveLLM {
					return Result{Status: statusSkip, Note: "live=false"}
				}
				counts, err := r.redis.HGetAll(ctx, intentCountsKey).Result()
				if err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				if len(counts) == 0 {
					return Result{Status: statusFail, Note: "no counters after live scenarios"}
				}
				return Result{Status: statusPass, Note: fmt.Sprintf("%v", counts)}
			},
		},
		{
			Name: "Perf: health load",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/health")
			},
		},
	}
}

type envelope struct {
	Intent     string            `json:"intent"`
	Reply      string            `json:"reply"`
	Places     []json.RawMessage `json:"places"`
	Directions json.RawMessage   `json:"directions"`
}

func (r *Runner) get(ctx context.Context, url string) (int, []byte, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	return r.do(req)
}

func (r *Runner) post(ctx context.Context, url, body string) (int, []byte, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return r.do(req)
}

func (r *Runner) do(req *http.Request) (int, []byte, error) {
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	return resp.StatusCode, b, err
}

func getCase(name, url string, want int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			start := time.Now()
			code, _, err := r.get(ctx, url)
			if err != nil {
				return Result{Status: statusFail, Note: err.Error()}
			}
			if code != want {
				return Result{Status: statusFail, Note: fmt.Sprintf("status=%d", code)}
			}
			return Result{Status: statusPass, Latency: time.Since(start)}
		},
	}
}

func rawCase(name, url, body string, want int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			start := time.Now()
			code, b, err := r.post(ctx, url, body)
			if err != nil {
				return Result{Status: statusFail, Note: err.Error()}
			}
			if code != want {
				return Result{Status: statusFail, Note: fmt.Sprintf("status=%d body=%s", code, b)}
			}
			return Result{Status: statusPass, Latency: time.Since(start)}
		},
	}
}

// liveCase posts a query and checks the classified intent. check may add
// scenario-specific assertions and returns a failure note or "".
func liveCase(name, base string, payload map[string]any, wantIntent string, check func(envelope) string) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			if !r.cfg.LiveLLM {
				return Result{Status: statusSkip, Note: "live=false"}
			}
			b, _ := json.Marshal(payload)
			start := time.Now()
			code, body, err := r.post(ctx, base+"/ai_assistant", string(b))
			latency := time.Since(start)
			if err != nil {
				return Result{Status: statusFail, Note: err.Error()}
			}
			if code != http.StatusOK {
				return Result{Status: statusFail, Note: fmt.Sprintf("status=%d body=%s", code, body)}
			}
			var env envelope
			if err := json.Unmarshal(body, &env); err != nil {
				return Result{Status: statusFail, Note: err.Error()}
			}
			if env.Intent != wantIntent {
				return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("intent=%s want %s", env.Intent, wantIntent)}
			}
			if check != nil {
				if note := check(env); note != "" {
					return Result{Status: statusFail, Latency: latency, Note: note}
				}
			}
			return Result{Status: statusPass, Latency: latency}
		},
	}
}

func perfLoad(ctx context.Context, r *Runner, url string) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				code, _, err := r.get(ctx, url)
				mu.Lock()
				if err != nil || code != http.StatusOK {
					errCount++
				} else {
					count++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: statusFail, Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: statusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}
