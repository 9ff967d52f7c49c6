package cli

import (
	"context"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/cli/config"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/service/loader"
	"github.com/secmon-lab/aegis/pkg/service/report"
	"github.com/secmon-lab/aegis/pkg/usecase"
	"github.com/secmon-lab/aegis/pkg/utils/logging"
	"github.com/secmon-lab/aegis/pkg/utils/safe"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentLoads = 8

func cmdEvaluate() *cli.Command {
	var (
		engineCfg config.Engine
		repoCfg   config.Repository
		output    string
		seed      uint64
		save      bool
		name      string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Write the report to a file instead of stdout",
			Destination: &output,
		},
		&cli.Uint64Flag{
			Name:        "seed",
			Usage:       "Seed for recommendation template selection",
			Sources:     cli.EnvVars("AEGIS_SEED"),
			Destination: &seed,
		},
		&cli.BoolFlag{
			Name:        "save",
			Usage:       "Store evaluated assessments in the repository",
			Destination: &save,
		},
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Record name used with --save",
			Destination: &name,
		},
	}
	flags = append(flags, engineCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:      "evaluate",
		Aliases:   []string{"eval"},
		Usage:     "Score assessment files and generate recommendations",
		ArgsUsage: "FILE...",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			paths := c.Args().Slice()
			if len(paths) == 0 {
				return goerr.Wrap(ErrNoInput, "evaluate requires at least one assessment file")
			}

			engine, format, err := engineCfg.Configure()
			if err != nil {
				return err
			}
			if format.IsBinary() && output == "" {
				return goerr.Wrap(ErrOutputRequired, "use --output with this format", goerr.V("format", format))
			}

			logger := logging.From(ctx)
			logger.Debug("evaluate", "engine", engineCfg, "files", paths)

			assessments, err := loadAll(ctx, paths)
			if err != nil {
				return err
			}

			opts := []usecase.Option{usecase.WithEngineConfig(engine)}
			if c.IsSet("seed") {
				opts = append(opts, usecase.WithRand(rand.New(rand.NewPCG(seed, seed))))
			}

			var uc *usecase.UseCases
			if save {
				repo, err := repoCfg.Configure(ctx)
				if err != nil {
					return err
				}
				defer safe.Close(ctx, repo)
				uc = usecase.New(repo, opts...)
			} else {
				uc = usecase.New(nil, opts...)
			}

			reports := make([]*model.Report, 0, len(assessments))
			for i, a := range assessments {
				rpt := uc.Assessment.Evaluate(ctx, a)
				if rpt.Name == "" {
					rpt.Name = filepath.Base(paths[i])
				}
				reports = append(reports, rpt)

				if save {
					record, err := uc.Assessment.Save(ctx, name, a)
					if err != nil {
						return goerr.Wrap(err, "failed to save assessment", goerr.V("path", paths[i]))
					}
					logger.Info("Saved assessment", "id", record.ID, "name", record.Name, "path", paths[i])
				}
			}

			return writeReports(ctx, c.Root().Writer, output, format, reports)
		},
	}
}

// loadAll decodes the files concurrently and returns them in argument order
func loadAll(ctx context.Context, paths []string) ([]*model.Assessment, error) {
	assessments := make([]*model.Assessment, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentLoads)

	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := loader.Load(path)
			if err != nil {
				return goerr.Wrap(err, "failed to load assessment", goerr.V("path", path))
			}
			assessments[i] = a
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return assessments, nil
}

func writeReports(ctx context.Context, stdout io.Writer, output string, format report.Format, reports []*model.Report) error {
	if output == "" {
		return report.Render(stdout, format, reports...)
	}

	f, err := os.Create(filepath.Clean(output))
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
	}
	defer safe.Close(ctx, f)

	if err := report.Render(f, format, reports...); err != nil {
		return goerr.Wrap(err, "failed to write report", goerr.V("path", output))
	}

	logging.From(ctx).Info("Report written", "path", output, "format", format)
	return nil
}
