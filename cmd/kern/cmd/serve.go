package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/boguszjelinski/kern/lcm"
	"github.com/boguszjelinski/kern/pool"
	"github.com/boguszjelinski/kern/scenario"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve pool search over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8090", "HTTP listen address")
}

// poolResponse is the wire shape returned by POST /api/pool: one entry per
// accepted pool, omitting allocation bookkeeping the caller has no use for.
type poolResponse struct {
	Cost    int         `json:"cost"`
	OrdIDs  []int       `json:"order_ids"`
	OrdActs []pool.Action `json:"order_actions"`
	Cab     int         `json:"cab"`
}

// fallbackResponse is the wire shape returned by POST /api/pool when the
// pool search finds nothing: a direct, unpooled order-to-cab match from
// lcm.FastLCMExhaustive.
type fallbackResponse struct {
	OrderID int `json:"order_id"`
	CabID   int `json:"cab_id"`
}

func runServe(c *cobra.Command, args []string) error {
	cfg, err := loadSolverConfig()
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/pool", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		in, err := scenario.Load(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := pool.Dynapool(r.Context(), cfg, in, 1000, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		if len(res.Pools) == 0 {
			fallback := lcm.FastLCMExhaustive(in.Dist, in.Orders, in.Cabs, 1000)
			out := make([]fallbackResponse, len(fallback))
			for i, a := range fallback {
				out[i] = fallbackResponse{OrderID: in.Orders[a.OrderIndex].ID, CabID: in.Cabs[a.CabIndex].ID}
			}
			json.NewEncoder(w).Encode(out)
			return
		}

		out := make([]poolResponse, len(res.Pools))
		for i, b := range res.Pools {
			out[i] = poolResponse{Cost: b.Cost, OrdIDs: b.OrdIDs, OrdActs: b.OrdActs, Cab: b.Cab}
		}
		json.NewEncoder(w).Encode(out)
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	log.Printf("kern serving on %s", serveAddr)
	srv := &http.Server{Addr: serveAddr, Handler: mux}
	return listenWithContext(context.Background(), srv)
}

func listenWithContext(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("kern: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		return srv.Shutdown(ctx)
	}
}
