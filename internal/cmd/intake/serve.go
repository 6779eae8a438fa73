package intake

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/turbolytics/scrivener/internal/config"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the intake daemon with health and validation endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _ := zap.NewDevelopment()
			defer logger.Sync()
			l := logger.Named("scrivener.intake.serve")

			c, err := config.NewScrivenerFromFile(configPath)
			if err != nil {
				return err
			}

			i, err := config.InitializeIntake(c, l, "serve")
			if err != nil {
				return err
			}

			logMiddleware := func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					start := time.Now()
					ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

					defer func() {
						l.Info("request",
							zap.String("from", r.RemoteAddr),
							zap.String("protocol", r.Proto),
							zap.String("method", r.Method),
							zap.String("path", r.URL.Path),
							zap.Int("status", ww.Status()),
							zap.Int("bytes", ww.BytesWritten()),
							zap.Duration("duration", time.Since(start)),
						)
					}()

					next.ServeHTTP(ww, r)
				})
			}

			r := chi.NewRouter()
			r.Use(logMiddleware)
			i.RegisterRoutes(r)

			address := fmt.Sprintf(":%d", viper.GetInt("port"))
			l.Info("starting server", zap.String("address", address))

			return http.ListenAndServe(address, r)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	cmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	cmd.MarkFlagRequired("config")
	viper.BindPFlag("port", cmd.Flags().Lookup("port"))
	viper.AutomaticEnv()
	viper.SetEnvPrefix("SCRIVENER")

	return cmd
}
