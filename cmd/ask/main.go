package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"query-router/internal/adapter/client"
	"query-router/internal/adapter/store"
	"query-router/internal/config"
	"query-router/internal/domain/entity"
	"query-router/internal/pkg/logger"
	"query-router/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		modeFlag      string
		knowledgeFile string
		offline       bool
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "ask [query...]",
		Short: "Resolve one question as ConstructionGPT or JP-Bot",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := entity.ParseMode(modeFlag)
			if err != nil {
				return err
			}

			cfg := config.Load()
			if knowledgeFile != "" {
				cfg.Knowledge.File = knowledgeFile
			}

			zl := zap.NewNop()
			if verbose {
				zl = logger.New(false, "", zapcore.AddSync(cmd.ErrOrStderr()))
			}
			defer func() { _ = zl.Sync() }()

			knowledge, err := store.LoadKnowledgeStore(cfg.Knowledge.File)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var gateway *client.Gateway
			state := entity.UnconfiguredGateway(fmt.Errorf("%w: offline mode", entity.ErrConfiguration))
			if !offline {
				gateway, state = client.Initialize(ctx, cfg.Gateway, zl)
			}
			if w := state.Warning(); w != nil && !offline {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (using fallback answers)\n", w)
			}

			resolver := usecase.NewResolver(state, gateway, knowledge, cfg.App.ModelTimeout, zl)
			resp := resolver.Resolve(ctx, mode, strings.Join(args, " "))

			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%s] source=%s category=%s\n", mode.DisplayName(), resp.Source, resp.Category)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", string(entity.ModeGeneralExpert), "responder: general or company")
	cmd.Flags().StringVar(&knowledgeFile, "knowledge", "", "YAML knowledge record (defaults to the built-in record)")
	cmd.Flags().BoolVar(&offline, "offline", false, "skip the generative backend and answer from the knowledge base")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log resolution details to stderr")
	return cmd
}
