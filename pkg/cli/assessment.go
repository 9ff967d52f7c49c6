package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/cli/config"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/usecase"
	"github.com/secmon-lab/aegis/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdAssessment() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:    "assessment",
		Aliases: []string{"a"},
		Usage:   "Manage stored assessments",
		Flags:   repoCfg.Flags(),
		Commands: []*cli.Command{
			cmdAssessmentList(&repoCfg),
			cmdAssessmentShow(&repoCfg),
			cmdAssessmentDelete(&repoCfg),
			cmdAssessmentExport(&repoCfg),
			cmdAssessmentImport(&repoCfg),
			cmdAssessmentClear(&repoCfg),
		},
	}
}

// withUseCases opens the repository for the duration of fn
func withUseCases(ctx context.Context, repoCfg *config.Repository, fn func(uc *usecase.UseCases) error, opts ...usecase.Option) error {
	repo, err := repoCfg.Configure(ctx)
	if err != nil {
		return err
	}
	defer safe.Close(ctx, repo)

	return fn(usecase.New(repo, opts...))
}

func recordIDArg(c *cli.Command) (model.RecordID, error) {
	if c.Args().Len() != 1 {
		return "", goerr.New("exactly one assessment ID is required", goerr.V("args", c.Args().Slice()))
	}
	return model.RecordID(c.Args().First()), nil
}

func cmdAssessmentList(repoCfg *config.Repository) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List stored assessments, oldest first",
		Action: func(ctx context.Context, c *cli.Command) error {
			return withUseCases(ctx, repoCfg, func(uc *usecase.UseCases) error {
				summaries, err := uc.Assessment.List(ctx)
				if err != nil {
					return err
				}
				return printSummaries(c.Root().Writer, summaries)
			})
		},
	}
}

func printSummaries(w io.Writer, summaries []*model.RecordSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME\tSAVED AT"); err != nil {
		return goerr.Wrap(err, "failed to write summary header")
	}
	for _, s := range summaries {
		saved := time.UnixMilli(s.Timestamp).UTC().Format(time.RFC3339)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Name, saved); err != nil {
			return goerr.Wrap(err, "failed to write summary", goerr.V("id", s.ID))
		}
	}
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to flush summaries")
	}
	return nil
}

func cmdAssessmentShow(repoCfg *config.Repository) *cli.Command {
	var engineCfg config.Engine
	var output string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Write the report to a file instead of stdout",
			Destination: &output,
		},
	}
	flags = append(flags, engineCfg.Flags()...)

	return &cli.Command{
		Name:      "show",
		Usage:     "Score a stored assessment and print its report",
		ArgsUsage: "ID",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := recordIDArg(c)
			if err != nil {
				return err
			}
			engine, format, err := engineCfg.Configure()
			if err != nil {
				return err
			}
			if format.IsBinary() && output == "" {
				return goerr.Wrap(ErrOutputRequired, "use --output with this format", goerr.V("format", format))
			}

			return withUseCases(ctx, repoCfg, func(uc *usecase.UseCases) error {
				record, err := uc.Assessment.Load(ctx, id)
				if err != nil {
					return err
				}
				rpt := uc.Assessment.Evaluate(ctx, record.Data)
				rpt.Name = record.Name
				return writeReports(ctx, c.Root().Writer, output, format, []*model.Report{rpt})
			}, usecase.WithEngineConfig(engine))
		},
	}
}

func cmdAssessmentDelete(repoCfg *config.Repository) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a stored assessment",
		ArgsUsage: "ID",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := recordIDArg(c)
			if err != nil {
				return err
			}
			return withUseCases(ctx, repoCfg, func(uc *usecase.UseCases) error {
				deleted, err := uc.Assessment.Delete(ctx, id)
				if err != nil {
					return err
				}
				if !deleted {
					return goerr.Wrap(ErrRecordNotFound, "nothing to delete", goerr.V("id", id))
				}
				_, err = fmt.Fprintf(c.Root().Writer, "deleted %s\n", id)
				return err
			})
		},
	}
}

func cmdAssessmentExport(repoCfg *config.Repository) *cli.Command {
	var output string

	return &cli.Command{
		Name:      "export",
		Usage:     "Export a stored assessment as JSON",
		ArgsUsage: "ID",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Write the export to a file instead of stdout",
				Destination: &output,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := recordIDArg(c)
			if err != nil {
				return err
			}
			return withUseCases(ctx, repoCfg, func(uc *usecase.UseCases) error {
				if output == "" {
					return uc.Assessment.Export(ctx, id, c.Root().Writer)
				}

				f, err := os.Create(filepath.Clean(output))
				if err != nil {
					return goerr.Wrap(err, "failed to create export file", goerr.V("path", output))
				}
				defer safe.Close(ctx, f)
				return uc.Assessment.Export(ctx, id, f)
			})
		},
	}
}

func cmdAssessmentImport(repoCfg *config.Repository) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import an exported assessment, or a bare assessment JSON document",
		ArgsUsage: "FILE|-",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.Wrap(ErrNoInput, "import requires exactly one file")
			}
			path := c.Args().First()

			var r io.Reader = os.Stdin
			if path != "-" {
				f, err := os.Open(filepath.Clean(path))
				if err != nil {
					return goerr.Wrap(err, "failed to open import file", goerr.V("path", path))
				}
				defer safe.Close(ctx, f)
				r = f
			}

			return withUseCases(ctx, repoCfg, func(uc *usecase.UseCases) error {
				record, err := uc.Assessment.Import(ctx, r)
				if err != nil {
					return goerr.Wrap(err, "failed to import assessment", goerr.V("path", path))
				}
				_, err = fmt.Fprintf(c.Root().Writer, "imported %s\n", record.ID)
				return err
			})
		},
	}
}

func cmdAssessmentClear(repoCfg *config.Repository) *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Delete every stored assessment",
		Action: func(ctx context.Context, c *cli.Command) error {
			return withUseCases(ctx, repoCfg, func(uc *usecase.UseCases) error {
				return uc.Assessment.Clear(ctx)
			})
		},
	}
}
