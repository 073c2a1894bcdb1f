// Package cli implements chromactl, the operator command line of the
// storefront: offline estimates and catalog seeding.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	response "chromaprint/internal/adapter/http/dto/response"
	"chromaprint/internal/adapter/persistence/repository"
	"chromaprint/internal/domain/estimator"
	"chromaprint/internal/infrastructure/cache"
	"chromaprint/internal/infrastructure/config"
	"chromaprint/internal/infrastructure/database"
	appLogger "chromaprint/internal/infrastructure/logger"
	"chromaprint/internal/usecase"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const name = "chromactl"

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// NewCommand returns the root command. Command output goes to out.
func NewCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "ChromaPrint storefront tooling",
		Commands: []*cli.Command{
			estimateCmd(out),
			seedCmd(out),
		},
	}
}

func estimateCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Print the instant price estimate of a part",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "length", Usage: "Length in mm", Required: true},
			&cli.FloatFlag{Name: "width", Usage: "Width in mm", Required: true},
			&cli.FloatFlag{Name: "height", Usage: "Height in mm", Required: true},
			&cli.StringFlag{
				Name:     "material",
				Usage:    fmt.Sprintf("Material (%s)", strings.Join(estimator.Materials(), ", ")),
				Required: true,
			},
			&cli.StringFlag{
				Name:     "finish",
				Usage:    fmt.Sprintf("Finish (%s)", strings.Join(estimator.Finishes(), ", ")),
				Required: true,
			},
			&cli.FloatFlag{Name: "complexity", Value: estimator.DefaultComplexity, Usage: "Complexity factor, 0.5 to 2.0"},
			&cli.FloatFlag{Name: "infill", Value: estimator.DefaultInfill, Usage: "Infill fraction, 0.05 to 1.0"},
			&cli.FloatFlag{Name: "model-volume", Usage: "Model volume in mm3, overrides the bounding box"},
			&cli.StringFlag{Name: "format", Value: formatJSON, Usage: "Output format (json, yaml)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := strings.ToLower(cmd.String("format"))
			if format != formatJSON && format != formatYAML {
				return fmt.Errorf("unknown output format: %q", format)
			}

			in := estimator.Input{
				LengthMM:   cmd.Float("length"),
				WidthMM:    cmd.Float("width"),
				HeightMM:   cmd.Float("height"),
				Material:   cmd.String("material"),
				Finish:     cmd.String("finish"),
				Complexity: cmd.Float("complexity"),
				Infill:     cmd.Float("infill"),
			}
			if cmd.IsSet("model-volume") {
				v := cmd.Float("model-volume")
				in.ModelVolumeMM3 = &v
			}

			res, err := usecase.NewEstimateUseCase(nil).Estimate(ctx, in)
			if err != nil {
				return fmt.Errorf("invalid estimate input: %w", err)
			}
			return writeOutput(out, format, response.FromEstimateOutput(res))
		},
	}
}

func seedCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Seed the printer catalog table when it is empty",
		Action: func(ctx context.Context, _ *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := appLogger.New(cfg.LogLevel, cfg.IsDevelopment())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			n, err := seedCatalog(ctx, cfg, log)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "inserted %d printers\n", n)
			return err
		},
	}
}

func seedCatalog(ctx context.Context, cfg *config.Config, log *zap.Logger) (int, error) {
	if !cfg.DynamoDB.Enabled {
		return 0, usecase.ErrStoreUnavailable
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, log)
	if err != nil {
		return 0, err
	}
	if cfg.DynamoDB.CreateTables {
		if _, err := database.EnsureTables(ctx, ddb, repository.TableDefinitions(cfg.DynamoDB), log); err != nil {
			return 0, err
		}
	}

	catalogCache, closeCache := cache.New(ctx, cfg.Cache, log)
	defer func() { _ = closeCache() }()

	repo := repository.NewPrinterDynamoRepository(ddb, cfg.DynamoDB.PrintersTable)
	return usecase.NewPrinterUseCase(repo, catalogCache, log).Seed(ctx)
}

func writeOutput(out io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
