// Command soilsim runs demonstration simulations of the soil heat
// conduction toolbox: a diurnal surface-temperature cycle through the
// Dirichlet solver, or a surface-energy-balance run through the flux
// solver with the balance closed by Brent's method.
package main

import (
	"fmt"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jl-pkgs/bonanmodeling/brent"
	"github.com/jl-pkgs/bonanmodeling/physcon"
	"github.com/jl-pkgs/bonanmodeling/soilprops"
	"github.com/jl-pkgs/bonanmodeling/soiltemp"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "soilsim",
		Short:         "1-D soil heat conduction demonstrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config: %w", err)
				}
			}
			if viper.GetBool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}
	root.PersistentFlags().String("config", "", "configuration file (any viper-supported format)")
	root.PersistentFlags().Bool("verbose", false, "debug logging")
	root.PersistentFlags().Float64("dt", 1800, "time step (s)")
	root.PersistentFlags().Int("days", 5, "days to simulate")
	root.PersistentFlags().String("texture", "silt loam", "soil texture class")
	root.AddCommand(runCmd(), fluxCmd())
	return root
}

// newColumn builds the standard demonstration column: exponentially
// thickening layers down to a few meters, moist and unfrozen.
func newColumn(tex soilprops.Texture, t0 float64, method soiltemp.PhaseChangeMethod) (*soiltemp.Column, error) {
	thickness := make([]float64, 10)
	for i := range thickness {
		thickness[i] = 0.05 * math.Pow(1.5, float64(i))
	}
	col := soiltemp.NewColumn(thickness)
	class, err := tex.Class()
	if err != nil {
		return nil, err
	}
	for i := 0; i < col.Layers(); i++ {
		col.Temperature[i] = t0
		// Start at 80% saturation, all liquid.
		col.LiquidWater[i] = 0.8 * class.Porosity() * physcon.RhoWat * col.Thickness[i]
	}
	if err := soilprops.Thermal(col, tex, method); err != nil {
		return nil, err
	}
	return col, nil
}

func simulationConfig() (tex soilprops.Texture, dt float64, steps, stepsPerDay int, err error) {
	tex, err = soilprops.ParseTexture(viper.GetString("texture"))
	if err != nil {
		return 0, 0, 0, 0, err
	}
	dt = viper.GetFloat64("dt")
	if !(dt > 0) {
		return 0, 0, 0, 0, soiltemp.ErrBadTimeStep
	}
	stepsPerDay = int(math.Max(1, 86400/dt))
	steps = viper.GetInt("days") * stepsPerDay
	return tex, dt, steps, stepsPerDay, nil
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "diurnal cycle with a prescribed surface temperature",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			tex, dt, steps, stepsPerDay, err := simulationConfig()
			if err != nil {
				return err
			}
			scheme, err := parseScheme(viper.GetString("scheme"))
			if err != nil {
				return err
			}
			method, err := parseMethod(viper.GetString("method"))
			if err != nil {
				return err
			}
			opts := soiltemp.Options{Scheme: scheme, Method: method}

			tmean := viper.GetFloat64("tmean")
			amplitude := viper.GetFloat64("amplitude")
			col, err := newColumn(tex, tmean, method)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"texture": tex, "scheme": scheme, "method": method,
				"layers": col.Layers(), "dt": dt, "steps": steps,
			}).Info("starting diurnal run")

			for step := 0; step < steps; step++ {
				tsurf := tmean + amplitude*math.Sin(2*math.Pi*float64(step)*dt/86400)
				if err := soilprops.Thermal(col, tex, method); err != nil {
					return err
				}
				flx, err := soiltemp.SolveSurfaceTemperature(col, tsurf, dt, opts)
				if err != nil {
					return fmt.Errorf("step %d: %w", step, err)
				}
				log.WithFields(log.Fields{
					"tsurf": fmt.Sprintf("%.2f", tsurf),
					"tsoi1": fmt.Sprintf("%.2f", col.Temperature[0]),
					"gsoi":  fmt.Sprintf("%.1f", flx.SurfaceHeatFlux),
					"hfsoi": fmt.Sprintf("%.1f", flx.PhaseChangeFlux),
				}).Debug("step")
				if (step+1)%stepsPerDay == 0 {
					log.WithFields(log.Fields{
						"day":    (step + 1) / stepsPerDay,
						"tsoi1":  fmt.Sprintf("%.2f", col.Temperature[0]),
						"tsoiN":  fmt.Sprintf("%.2f", col.Temperature[col.Layers()-1]),
						"liquid": fmt.Sprintf("%.1f", col.LiquidWater[0]),
						"ice":    fmt.Sprintf("%.1f", col.Ice[0]),
					}).Info("end of day")
				}
			}
			return nil
		},
	}
	cmd.Flags().String("scheme", "implicit", "time scheme: implicit or crank-nicolson")
	cmd.Flags().String("method", "apparent-heat-capacity", "phase change: apparent-heat-capacity or excess-heat")
	cmd.Flags().Float64("tmean", 275.15, "mean surface temperature (K)")
	cmd.Flags().Float64("amplitude", 10, "diurnal amplitude (K)")
	return cmd
}

// balanceState threads the soil response through the Brent residual: each
// evaluation solves a fresh copy of the column so the state handed back is
// the one consistent with the returned surface temperature.
type balanceState struct {
	col  *soiltemp.Column
	flx  soiltemp.Fluxes
	melt soiltemp.SnowMelt
}

func fluxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flux",
		Short: "surface energy balance closed with the flux solver",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			tex, dt, steps, stepsPerDay, err := simulationConfig()
			if err != nil {
				return err
			}
			const (
				emissivity  = 0.97
				conductance = 15.0 // bulk sensible-heat conductance, W/m²/K
			)
			tair := viper.GetFloat64("tair")
			swdown := viper.GetFloat64("swdown")
			snow := viper.GetFloat64("snow")

			col, err := newColumn(tex, tair-2, soiltemp.ApparentHeatCapacity)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"texture": tex, "layers": col.Layers(), "dt": dt,
				"steps": steps, "snow": snow,
			}).Info("starting flux run")

			for step := 0; step < steps; step++ {
				if err := soilprops.Thermal(col, tex, soiltemp.ApparentHeatCapacity); err != nil {
					return err
				}
				sw := math.Max(0, swdown*math.Sin(2*math.Pi*float64(step)*dt/86400))
				lwdown := emissivity * physcon.Sigma * math.Pow(tair, 4)

				// Surface temperature closing the energy balance: available
				// energy equals its own flux into the soil, the soil response
				// coming from the flux-variant solver on a scratch copy.
				residual := func(ts float64, s balanceState) (balanceState, float64) {
					f0 := sw + lwdown - emissivity*physcon.Sigma*math.Pow(ts, 4) -
						conductance*(ts-tair)
					df0 := -(4*emissivity*physcon.Sigma*math.Pow(ts, 3) + conductance)
					trial := cloneColumn(col)
					flx, mlt, solveErr := soiltemp.SolveSurfaceFlux(trial, f0, df0, dt, snow, soiltemp.DefaultOptions())
					if solveErr != nil {
						// Poisoned state surfaces as a non-bracketable residual.
						return s, math.NaN()
					}
					s.col, s.flx, s.melt = trial, flx, mlt
					return s, ts - trial.Temperature[0]
				}

				ts, state, err := brent.Root(residual, tair-40, tair+40, 0.01, balanceState{})
				if err != nil {
					return fmt.Errorf("step %d: surface balance: %w", step, err)
				}
				copy(col.Temperature, state.col.Temperature)
				snow = math.Max(0, snow-state.melt.Rate*dt)

				if (step+1)%stepsPerDay == 0 {
					log.WithFields(log.Fields{
						"day":   (step + 1) / stepsPerDay,
						"ts":    fmt.Sprintf("%.2f", ts),
						"tsoi1": fmt.Sprintf("%.2f", col.Temperature[0]),
						"gsoi":  fmt.Sprintf("%.1f", state.flx.SurfaceHeatFlux),
						"snow":  fmt.Sprintf("%.1f", snow),
						"melt":  fmt.Sprintf("%.2e", state.melt.Rate),
					}).Info("end of day")
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64("tair", 276.15, "air temperature (K)")
	cmd.Flags().Float64("swdown", 400, "peak shortwave flux (W/m²)")
	cmd.Flags().Float64("snow", 20, "initial snow water (kg/m²)")
	return cmd
}

func cloneColumn(c *soiltemp.Column) *soiltemp.Column {
	clone := *c
	clone.Temperature = append([]float64(nil), c.Temperature...)
	clone.LiquidWater = append([]float64(nil), c.LiquidWater...)
	clone.Ice = append([]float64(nil), c.Ice...)
	return &clone
}

func parseScheme(name string) (soiltemp.SolutionScheme, error) {
	switch name {
	case "implicit":
		return soiltemp.Implicit, nil
	case "crank-nicolson":
		return soiltemp.CrankNicolson, nil
	default:
		return 0, fmt.Errorf("%w: %q", soiltemp.ErrBadScheme, name)
	}
}

func parseMethod(name string) (soiltemp.PhaseChangeMethod, error) {
	switch name {
	case "apparent-heat-capacity":
		return soiltemp.ApparentHeatCapacity, nil
	case "excess-heat":
		return soiltemp.ExcessHeat, nil
	default:
		return 0, fmt.Errorf("%w: %q", soiltemp.ErrBadMethod, name)
	}
}
