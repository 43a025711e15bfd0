package main

import (
	"context"

	"github.com/spf13/cobra"
)

func variadicCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variadic",
		Short: "Print single values, then one variadic call",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			result, err := app.service.Variadic(context.Background())
			if err != nil {
				return err
			}
			return app.printer.Print(result)
		},
	}
}

func printCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:     "print [--] [values...]",
		Short:   "Print arbitrary values as one variadic call",
		Long:    "Print arbitrary values as one variadic call. Values starting with a dash\nare read as flags unless they follow --.",
		Example: "  showcase print 10 20.24 text\n  showcase print -- -5 2.5 text",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			result, err := app.service.PrintValues(context.Background(), parseValues(args, raw))
			if err != nil {
				return err
			}
			return app.printer.Print(result)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "treat every value as text")
	return cmd
}

func dispatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch",
		Short: "Contrast static and dynamic method dispatch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			result, err := app.service.Dispatch(context.Background())
			if err != nil {
				return err
			}
			return app.printer.Print(result)
		},
	}
}

func threadsCommand() *cobra.Command {
	var (
		id     int
		name   string
		series []float64
	)

	cmd := &cobra.Command{
		Use:   "threads",
		Short: "Spawn and join workers that own their input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			service := app.service
			threads := service.Config.Threads
			if cmd.Flags().Changed("id") {
				threads.RecordID = id
			}
			if cmd.Flags().Changed("name") {
				threads.RecordName = name
			}
			if cmd.Flags().Changed("series") {
				threads.Series = series
			}
			service.Config.Threads = threads

			result, err := service.Threads(context.Background())
			if err != nil {
				return err
			}
			return app.printer.Print(result)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "record id")
	cmd.Flags().StringVar(&name, "name", "", "record name")
	cmd.Flags().Float64SliceVar(&series, "series", nil, "comma-separated series values")
	return cmd
}

func allCommand() *cobra.Command {
	var parallel bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			result, err := app.service.All(context.Background(), parallel)
			if err != nil {
				return err
			}
			return app.printer.Print(result)
		},
	}

	cmd.Flags().BoolVar(&parallel, "parallel", false, "run demos concurrently")
	return cmd
}
