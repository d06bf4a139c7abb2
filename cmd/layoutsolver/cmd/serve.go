package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/santileortiz/layoutsolver/internal/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP solve service",
	Long: `Start an HTTP server exposing POST /solve: send a layout document as the
request body (set Content-Type to application/yaml or application/json) and
get back solved symbol values and diagnostics as JSON.

Example:
  layoutsolver serve --addr :8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newCLILogger()

	h := httpapi.New(logger)
	router := mux.NewRouter()
	h.Register(router)

	server := &http.Server{
		Addr:    serveAddr,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		level.Info(logger).Log("msg", "shutting down server")
		_ = server.Close()
	}()

	level.Info(logger).Log("msg", "listening", "addr", serveAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
