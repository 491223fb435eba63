package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go-hrportal/internal/attendance"
	"go-hrportal/internal/config"
	"go-hrportal/internal/geofence"
	"go-hrportal/internal/messaging/kafka"
	"go-hrportal/internal/payroll"

	"github.com/spf13/cobra"
)

type payslipRecomputer interface {
	RecomputeAll(ctx context.Context, companyID string, dryRun bool) (payroll.RecomputeResult, error)
}

type absentMarker interface {
	MarkAbsent(ctx context.Context, companyID, date string) (attendance.MarkAbsentResult, error)
}

type cliDeps struct {
	payroll    payslipRecomputer
	attendance absentMarker
	close      func()
}

type depsFactory func() (*cliDeps, error)

// NewRootCommand builds the hrctl operator CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(connectCLIDeps)
}

func newRootCommand(deps depsFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "hrctl",
		Short:         "Operator tooling for go-hrportal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newGeofenceCommand(),
		newPayslipCommand(deps),
		newAttendanceCommand(deps),
	)
	return root
}

func newGeofenceCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "geofence", Short: "Geofence utilities"}

	var office geofence.Office
	var loc geofence.Point
	check := &cobra.Command{
		Use:   "check",
		Short: "Evaluate a coordinate against an office radius",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := geofence.Evaluate(office, loc)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"distance_meters": res.DisplayMeters,
				"within_radius":   res.WithinRadius,
				"radius_meters":   office.RadiusMeters,
			})
		},
	}
	f := check.Flags()
	f.Float64Var(&office.Lat, "office-lat", 0, "office latitude")
	f.Float64Var(&office.Lng, "office-lng", 0, "office longitude")
	f.Float64Var(&office.RadiusMeters, "radius", 0, "allowed radius in meters")
	f.Float64Var(&loc.Lat, "lat", 0, "latitude to check")
	f.Float64Var(&loc.Lng, "lng", 0, "longitude to check")
	for _, name := range []string{"office-lat", "office-lng", "radius", "lat", "lng"} {
		_ = check.MarkFlagRequired(name)
	}

	cmd.AddCommand(check)
	return cmd
}

func newPayslipCommand(deps depsFactory) *cobra.Command {
	cmd := &cobra.Command{Use: "payslip", Short: "Payslip maintenance"}

	var companyID string
	var dryRun bool
	recompute := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute stored payslip totals and fix drift",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			defer d.close()

			res, err := d.payroll.RecomputeAll(cmd.Context(), companyID, dryRun)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	recompute.Flags().StringVar(&companyID, "company", "", "company id")
	recompute.Flags().BoolVar(&dryRun, "dry-run", false, "report drift without writing")
	_ = recompute.MarkFlagRequired("company")

	cmd.AddCommand(recompute)
	return cmd
}

func newAttendanceCommand(deps depsFactory) *cobra.Command {
	cmd := &cobra.Command{Use: "attendance", Short: "Attendance maintenance"}

	var companyID, date string
	markAbsent := &cobra.Command{
		Use:   "mark-absent",
		Short: "Insert ABSENT rows for employees without attendance on a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			defer d.close()

			res, err := d.attendance.MarkAbsent(cmd.Context(), companyID, date)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	markAbsent.Flags().StringVar(&companyID, "company", "", "company id")
	markAbsent.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	_ = markAbsent.MarkFlagRequired("company")
	_ = markAbsent.MarkFlagRequired("date")

	cmd.AddCommand(markAbsent)
	return cmd
}

func connectCLIDeps() (*cliDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	schedule, err := attendance.NewSchedule(cfg.Shift)
	if err != nil {
		return nil, err
	}

	in, err := ConnectInfra(cfg, false)
	if err != nil {
		return nil, err
	}

	outboxRepo := kafka.NewOutboxRepository(in.SQLDB)
	return &cliDeps{
		payroll: payroll.NewServiceWithOutbox(
			in.SQLDB, payroll.NewRepository(in.GormDB), outboxRepo, in.Audit, nil,
		),
		attendance: attendance.NewService(in.SQLDB, attendance.NewRepository(in.GormDB), nil, schedule),
		close:      in.Close,
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
