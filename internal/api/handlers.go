package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
	"pgregory.net/rand"

	"fastrank-go/internal/config"
	"fastrank-go/internal/order"
	"fastrank-go/internal/rank"
)

var validate = validator.New()

// Handler serves the ranking endpoints. It is safe for concurrent use; each
// request owns its buffers and random generator.
type Handler struct {
	ties         rank.TiePolicy
	strategy     order.Strategy
	seed         uint64
	maxValues    int
	maxBodyBytes int64

	logger  log.Logger
	metrics *Metrics
	limiter *rate.Limiter
}

// NewHandler builds a Handler from a validated configuration.
func NewHandler(cfg config.Config, logger log.Logger, metrics *Metrics) *Handler {
	h := &Handler{
		ties:         cfg.Policy(),
		strategy:     cfg.SortStrategy(),
		seed:         cfg.Seed,
		maxValues:    cfg.MaxValues,
		maxBodyBytes: cfg.HTTP.MaxBodyBytes,
		logger:       logger,
		metrics:      metrics,
	}
	if cfg.RateLimit.RPS > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}
	return h
}

// RegisterHandlers adds the service routes to r.
func (h *Handler) RegisterHandlers(r *mux.Router) {
	r.Handle("/health", h.instrument("health", http.HandlerFunc(health))).Methods(http.MethodGet)
	r.Handle("/rank", h.instrument("rank", h.limit(http.HandlerFunc(h.rankHandler)))).Methods(http.MethodPost)
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type rankRequest struct {
	Values      []any   `json:"values" validate:"required"`
	Ties        string  `json:"ties" validate:"omitempty,oneof=average first random max min"`
	Strategy    string  `json:"strategy"`
	Seed        *uint64 `json:"seed"`
	Percentiles bool    `json:"percentiles"`
}

type rankResponse struct {
	Ranks       []float64 `json:"ranks"`
	Ties        string    `json:"ties"`
	Strategy    string    `json:"strategy"`
	Percentiles []float64 `json:"percentiles,omitempty"`
}

var (
	// errBadRequest marks request errors that are the caller's fault.
	errBadRequest   = errors.New("bad request")
	errTrailingData = errors.New("unexpected data after JSON body")
)

func (h *Handler) rankHandler(w http.ResponseWriter, r *http.Request) {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var req rankRequest
	err := dec.Decode(&req)
	if err == nil {
		switch _, terr := dec.Token(); {
		case terr == io.EOF:
		case terr == nil:
			err = errTrailingData
		default:
			err = fmt.Errorf("%w: %w", errTrailingData, terr)
		}
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.rank(req)
	if err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) rank(req rankRequest) (*rankResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	if len(req.Values) > h.maxValues {
		return nil, fmt.Errorf("%w: %d values exceeds limit of %d", errBadRequest, len(req.Values), h.maxValues)
	}

	ties := h.ties
	if req.Ties != "" {
		ties = rank.TiePolicy(req.Ties)
	}
	strategy := h.strategy
	if req.Strategy != "" {
		s, err := order.ParseStrategy(req.Strategy)
		if err != nil {
			return nil, err
		}
		strategy = s
	}
	values, err := decodeValues(req.Values)
	if err != nil {
		return nil, err
	}

	opts := []rank.Option{rank.WithStrategy(strategy)}
	if ties == rank.Random {
		switch {
		case req.Seed != nil:
			opts = append(opts, rank.WithRand(rand.New(*req.Seed)))
		case h.seed != 0:
			opts = append(opts, rank.WithRand(rand.New(h.seed)))
		}
	}
	ranks, err := rank.RankAny(values, ties, opts...)
	if err != nil {
		return nil, err
	}
	if h.metrics != nil {
		h.metrics.observeRank(ties, len(ranks))
	}

	resp := &rankResponse{
		Ranks:    ranks,
		Ties:     ties.String(),
		Strategy: strategy.String(),
	}
	if req.Percentiles {
		resp.Percentiles = rank.Percentiles(ranks)
	}
	return resp, nil
}

// decodeValues picks the narrowest slice type for a decoded JSON array:
// []bool when every element is a boolean, []int64 when every element is an
// integer literal, []float64 otherwise. Strings, nulls, objects and mixed
// kinds are rejected.
func decodeValues(raw []any) (any, error) {
	if len(raw) == 0 {
		return []float64{}, nil
	}
	if _, ok := raw[0].(bool); ok {
		out := make([]bool, len(raw))
		for i, v := range raw {
			b, ok := v.(bool)
			if !ok {
				return nil, fmt.Errorf("%w: mixed element kinds at index %d", rank.ErrUnsupportedType, i)
			}
			out[i] = b
		}
		return out, nil
	}

	nums := make([]json.Number, len(raw))
	for i, v := range raw {
		n, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: %T at index %d", rank.ErrUnsupportedType, v, i)
		}
		nums[i] = n
	}
	ints := make([]int64, len(nums))
	for i, n := range nums {
		v, err := n.Int64()
		if err != nil {
			return decodeFloats(nums)
		}
		ints[i] = v
	}
	return ints, nil
}

func decodeFloats(nums []json.Number) ([]float64, error) {
	out := make([]float64, len(nums))
	for i, n := range nums {
		v, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: value %s at index %d: %w", errBadRequest, n, i, err)
		}
		out[i] = v
	}
	return out, nil
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, rank.ErrUnknownPolicy),
		errors.Is(err, rank.ErrUnsupportedType),
		errors.Is(err, rank.ErrUnstableFirst),
		errors.Is(err, order.ErrUnknownStrategy):
		level.Debug(h.logger).Log("msg", "rejected rank request", "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		level.Error(h.logger).Log("msg", "rank request failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
