package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"Portfolio/internal/calc/building"
	"Portfolio/internal/calc/concrete"
	"Portfolio/internal/calc/detailed"
	"Portfolio/internal/calc/materials"
	"Portfolio/internal/calc/params"
	"Portfolio/internal/calc/quick"
	"Portfolio/internal/calc/report"
	"Portfolio/internal/calc/slab"
)

var asJSON bool

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "estimate",
		Short:        "Construction cost and material estimates from the terminal",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")

	root.AddCommand(buildingCmd())
	root.AddCommand(slabCmd())
	root.AddCommand(quickCmd())
	root.AddCommand(detailedCmd())
	root.AddCommand(materialsCmd())
	root.AddCommand(concreteCmd())
	return root
}

func buildingCmd() *cobra.Command {
	var (
		in                           building.Input
		manual                       bool
		laborPct, laborAmt, contPct  float64
		cement, steel, sand, agg     float64
		finishing, project, pdf, xls string
	)
	cmd := &cobra.Command{
		Use:   "building",
		Short: "Estimate materials and cost for a building",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			in.FinishingQuality = params.FinishingQuality(finishing)
			if manual {
				in.LaborMode = building.LaborManual
			}
			in.LaborPercent = optional(f.Changed("labor-percent"), laborPct)
			in.LaborManual = optional(f.Changed("labor-amount"), laborAmt)
			in.ContingencyPercent = optional(f.Changed("contingency"), contPct)
			in.MaterialRates = building.RateOverrides{
				Cement:    optional(f.Changed("cement-rate"), cement),
				Steel:     optional(f.Changed("steel-rate"), steel),
				Sand:      optional(f.Changed("sand-rate"), sand),
				Aggregate: optional(f.Changed("aggregate-rate"), agg),
			}

			est, err := report.NewEstimate(report.Request{Project: project, Input: in}, time.Now())
			if err != nil {
				return err
			}
			if err := writeReport(pdf, est, report.GeneratePDF); err != nil {
				return err
			}
			if err := writeReport(xls, est, report.GenerateExcel); err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), est.Result, printBuilding)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.AreaSqFt, "area", 0, "built-up area in sq.ft")
	f.Float64Var(&in.RatePerSqFt, "rate", 0, "construction rate per sq.ft")
	f.BoolVar(&manual, "manual-labor", false, "use a fixed labor amount instead of a percentage")
	f.Float64Var(&laborPct, "labor-percent", 0, "labor as a percentage of material cost")
	f.Float64Var(&laborAmt, "labor-amount", 0, "fixed labor amount with --manual-labor")
	f.Float64Var(&contPct, "contingency", 0, "contingency percentage (default 7)")
	f.StringVar(&finishing, "finishing", string(params.FinishingStandard), "finishing quality: basic, standard or premium")
	f.Float64Var(&cement, "cement-rate", 0, "cement price per bag")
	f.Float64Var(&steel, "steel-rate", 0, "steel price per kg")
	f.Float64Var(&sand, "sand-rate", 0, "sand price per m³")
	f.Float64Var(&agg, "aggregate-rate", 0, "aggregate price per m³")
	f.StringVar(&project, "project", "", "project name for reports")
	f.StringVar(&pdf, "pdf", "", "also write a PDF report to this path")
	f.StringVar(&xls, "xlsx", "", "also write an XLSX report to this path")
	return cmd
}

func slabCmd() *cobra.Command {
	var in slab.Input
	cmd := &cobra.Command{
		Use:   "slab",
		Short: "Concrete, cement and steel for an RCC slab",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := slab.Calculate(in)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), res, printSlab)
		},
	}
	cmd.Flags().Float64Var(&in.AreaSqFt, "area", 0, "slab area in sq.ft")
	cmd.Flags().Float64Var(&in.ThicknessFt, "thickness", 0, "slab thickness in ft")
	return cmd
}

func quickCmd() *cobra.Command {
	var in quick.Input
	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Area times rate with indicative material quantities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := quick.Calculate(in)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), res, printQuick)
		},
	}
	cmd.Flags().Float64Var(&in.AreaSqFt, "area", 0, "built-up area in sq.ft")
	cmd.Flags().Float64Var(&in.RatePerSqFt, "rate", 0, "construction rate per sq.ft")
	return cmd
}

func detailedCmd() *cobra.Command {
	var (
		in      detailed.Input
		quality string
	)
	cmd := &cobra.Command{
		Use:   "detailed",
		Short: "Multi-floor estimate by project and construction type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.FinishQuality = params.FinishingQuality(quality)
			res, err := detailed.Calculate(in)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), res, printDetailed)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectType, "project-type", "residential", "residential, commercial or institutional")
	f.StringVar(&in.ConstructionType, "construction", "rcc", "rcc, loadbearing or mixed")
	f.Float64Var(&in.LengthFt, "length", 0, "plinth length in ft")
	f.Float64Var(&in.WidthFt, "width", 0, "plinth width in ft")
	f.IntVar(&in.Floors, "floors", 1, "number of floors")
	f.Float64Var(&in.FloorHeightFt, "floor-height", 10, "floor height in ft")
	f.StringVar(&quality, "quality", string(params.FinishingStandard), "basic, standard, premium or luxury")
	return cmd
}

func materialsCmd() *cobra.Command {
	var (
		in        materials.Input
		workType  string
		thickness float64
	)
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Material quantities for brickwork, plaster, flooring or RCC work",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.WorkType = materials.WorkType(workType)
			in.ThicknessIn = optional(cmd.Flags().Changed("thickness"), thickness)
			res, err := materials.Calculate(in)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), res, printMaterials)
		},
	}
	f := cmd.Flags()
	f.StringVar(&workType, "work", string(materials.Brickwork9), "brickwork, brickwork4, plaster, flooring or rcc")
	f.Float64Var(&in.LengthFt, "length", 0, "length in ft")
	f.Float64Var(&in.WidthFt, "width", 0, "width or height in ft")
	f.Float64Var(&thickness, "thickness", materials.DefaultThicknessIn, "thickness in inches")
	return cmd
}

func concreteCmd() *cobra.Command {
	var in concrete.Input
	cmd := &cobra.Command{
		Use:   "concrete",
		Short: "Nominal mix design for M10 to M30 concrete",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := concrete.Calculate(in)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), res, printConcrete)
		},
	}
	cmd.Flags().StringVar(&in.Grade, "grade", "M20", "concrete grade")
	cmd.Flags().Float64Var(&in.VolumeM3, "volume", 0, "wet volume in m³")
	return cmd
}

func optional(set bool, v float64) *float64 {
	if !set {
		return nil
	}
	return &v
}

func writeReport(path string, est report.Estimate, render func(report.Estimate) ([]byte, error)) error {
	if path == "" {
		return nil
	}
	data, err := render(est)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
