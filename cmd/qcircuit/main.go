package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qcircuit"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "qcircuit",
		Usage: "simulate small quantum circuits and textbook algorithms",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print results as JSON"},
		},
		Commands: []*cli.Command{
			{
				Name:  "deutsch",
				Usage: "classify an oracle as constant or balanced",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "oracle", Value: qcircuit.BalancedIdentity.String(), Usage: "constant-0, constant-1, balanced-identity or balanced-not"},
				},
				Action: runDeutsch,
			},
			{
				Name:  "grover",
				Usage: "search four items for a marked index",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "target", Value: 0, Usage: "marked index in [0, 4)"},
					&cli.IntFlag{Name: "iterations", Value: 0, Usage: "Grover iterations, 0 for the optimal count"},
				},
				Action: runGrover,
			},
			{
				Name:  "bell",
				Usage: "prepare and measure a Bell state",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "variant", Value: qcircuit.PhiPlus.String(), Usage: "phi-plus, phi-minus, psi-plus or psi-minus"},
				},
				Action: runBell,
			},
			{
				Name:   "gates",
				Usage:  "list the gate catalog",
				Action: runGates,
			},
			{
				Name:  "sample",
				Usage: "sample a circuit for many shots",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "bell", Usage: "sample H(q0) · CNOT(q0→q1) instead of a uniform superposition"},
					&cli.IntFlag{Name: "qubits", Value: 2, Usage: "width of the uniform superposition"},
					&cli.IntFlag{Name: "shots", Usage: "number of shots, defaults to QCIRCUIT_SHOTS"},
				},
				Action: runSample,
			},
		},
	}
}

func runDeutsch(c *cli.Context) error {
	cfg, err := qcircuit.LoadConfig()
	if err != nil {
		return err
	}

	oracle, err := qcircuit.ParseDeutschOracle(c.String("oracle"))
	if err != nil {
		return err
	}

	trace, err := qcircuit.RunAlgorithm(qcircuit.AlgorithmDeutsch, qcircuit.Params{Oracle: oracle}, cfg.RandomSource())
	if err != nil {
		return err
	}
	return printTrace(c, trace)
}

func runGrover(c *cli.Context) error {
	cfg, err := qcircuit.LoadConfig()
	if err != nil {
		return err
	}

	params := qcircuit.Params{Target: c.Int("target"), Iterations: c.Int("iterations")}
	trace, err := qcircuit.RunAlgorithm(qcircuit.AlgorithmGrover, params, cfg.RandomSource())
	if err != nil {
		return err
	}
	return printTrace(c, trace)
}

func runBell(c *cli.Context) error {
	cfg, err := qcircuit.LoadConfig()
	if err != nil {
		return err
	}

	variant, err := qcircuit.ParseBellVariant(c.String("variant"))
	if err != nil {
		return err
	}

	trace, err := qcircuit.RunAlgorithm(qcircuit.AlgorithmBell, qcircuit.Params{Bell: variant}, cfg.RandomSource())
	if err != nil {
		return err
	}
	return printTrace(c, trace)
}

func runGates(c *cli.Context) error {
	gates := qcircuit.NewCatalog().Gates()
	if c.Bool("json") {
		return printJSON(gates)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Symbol", "Qubits", "Parametric", "Description"})
	for _, g := range gates {
		table.Append([]string{g.Name, g.Symbol, strconv.Itoa(g.Arity), strconv.FormatBool(g.Parametric), g.Description})
	}
	table.Render()
	return nil
}

func runSample(c *cli.Context) error {
	cfg, err := qcircuit.LoadConfig()
	if err != nil {
		return err
	}

	shots := cfg.Shots
	if c.IsSet("shots") {
		shots = c.Int("shots")
	}

	var circuit *qcircuit.Circuit
	if c.Bool("bell") {
		circuit = qcircuit.NewCircuit(2).H(0).CNOT(0, 1)
	} else {
		circuit = qcircuit.NewCircuit(c.Int("qubits"))
		for q := 0; q < circuit.Qubits; q++ {
			circuit.H(q)
		}
	}

	sampler := qcircuit.NewSamplerFromConfig(cfg)
	histogram, err := sampler.Run(c.Context, circuit, shots)
	if err != nil {
		return err
	}
	errnie.Info("sample - %v", sampler.Metrics().ExportMetrics())

	if c.Bool("json") {
		return printJSON(histogram)
	}

	fmt.Printf("%s, %d shots\n", circuit, histogram.Shots)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Outcome", "Count", "Frequency"})
	for _, e := range histogram.Entries() {
		table.Append([]string{"|" + e.Label + "⟩", strconv.Itoa(e.Count), fmt.Sprintf("%.4f", e.Frequency)})
	}
	table.Render()
	return nil
}

func printTrace(c *cli.Context, trace qcircuit.Trace) error {
	if c.Bool("json") {
		return printJSON(trace)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Operation", "State", "Rationale"})
	table.SetAutoWrapText(false)
	for i, step := range trace.Steps {
		table.Append([]string{strconv.Itoa(i), step.Operation, step.State, step.Rationale})
	}
	table.Render()

	outcomes := make([]string, len(trace.Outcomes))
	for i, o := range trace.Outcomes {
		outcomes[i] = strconv.Itoa(o)
	}
	fmt.Printf("%s: outcomes [%s], %s (correct: %t)\n",
		trace.Algorithm, strings.Join(outcomes, " "), trace.Interpretation, trace.Correct)
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
