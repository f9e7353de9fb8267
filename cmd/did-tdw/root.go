package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/did-tdw/pkg/config"
	"github.com/yourusername/did-tdw/pkg/resolver"
	"github.com/yourusername/did-tdw/pkg/verify"
)

var (
	cfgFile     string
	versionID   string
	versionTime string
)

var rootCmd = &cobra.Command{
	Use:   "did-tdw",
	Short: "Resolve did:tdw identifiers",
	Long: `did-tdw resolves Trust DID Web identifiers by fetching their DID Log
over HTTPS and cryptographically verifying every version before use.`,
	SilenceUsage: true,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <did>",
	Short: "Resolve a did:tdw identifier to its DID Document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver()
		if err != nil {
			return err
		}
		q, err := buildQuery()
		if err != nil {
			return err
		}

		res, resolveErr := r.Resolve(cmd.Context(), args[0], q)
		if res != nil {
			if err := printJSON(res); err != nil {
				return err
			}
		}
		return resolveErr
	},
}

var derefCmd = &cobra.Command{
	Use:   "deref <did-url>",
	Short: "Dereference a DID URL (e.g. a /whois presentation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver()
		if err != nil {
			return err
		}
		q, err := buildQuery()
		if err != nil {
			return err
		}

		deref, err := r.Dereference(cmd.Context(), args[0], q)
		if err != nil {
			return err
		}
		return printJSON(json.RawMessage(deref.Content))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&versionID, "version-id", "", "resolve a specific versionId")
	rootCmd.PersistentFlags().StringVar(&versionTime, "version-time", "", "resolve the version current at an RFC 3339 time")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(derefCmd)
}

func newResolver() (*resolver.Resolver, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	return resolver.New(resolver.Options{
		HTTPClient:    &http.Client{Timeout: time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second},
		AllowInsecure: cfg.HTTP.AllowInsecure,
		Proof:         verify.Policy{MinProofs: cfg.Proof.MinProofs},
	}), nil
}

func buildQuery() (resolver.Query, error) {
	q := resolver.Query{VersionID: versionID}
	if versionTime != "" {
		t, err := time.Parse(time.RFC3339, versionTime)
		if err != nil {
			return q, fmt.Errorf("invalid --version-time: %w", err)
		}
		q.VersionTime = t
	}
	return q, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
