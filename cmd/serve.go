package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"studyforge/internal/api"
	"studyforge/internal/feedback"
	"studyforge/internal/llm"
	"studyforge/internal/notes"
	"studyforge/internal/quiz"
	"studyforge/internal/suitability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		origins, _ := cmd.Flags().GetStringSlice("origin")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.RequestLog())
		if err != nil {
			return fmt.Errorf("completion provider not configured: %w", err)
		}

		handler := api.NewRouter(api.Deps{
			Suitability:    suitability.Default(),
			Generator:      quiz.NewGenerator(provider, quiz.DefaultConfig()),
			Notes:          notes.NewService(provider, notes.DefaultConfig()),
			Feedback:       feedback.NewService(provider, feedback.DefaultConfig()),
			Attempts:       st.Attempts(),
			AllowedOrigins: origins,
		})

		log.Printf("listening on %s", addr)
		return http.ListenAndServe(addr, handler)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().StringSlice("origin", nil, "Allowed CORS origins (repeatable)")
}
