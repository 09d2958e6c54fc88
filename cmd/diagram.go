package cmd

import (
	"io"
	"os"

	"github.com/lambda-feedback/gatewaykit/diagram"
	"github.com/lambda-feedback/gatewaykit/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	diagramCmdDescription = `The diagram command renders a VPC topology as a Graphviz DOT
or Mermaid graph. Without a topology file, the two zone
reference VPC (10.0.0.0/16) with public and private subnets,
NAT gateways and route tables per zone is rendered.`
	diagramCmd = &cli.Command{
		Name:        "diagram",
		Usage:       "Render the VPC topology diagram.",
		Description: diagramCmdDescription,
		Action:      diagramAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "format",
				Aliases:  []string{"f"},
				Usage:    "the output format. Options: dot, mermaid.",
				Value:    "dot",
				Category: "diagram",
			},
			&cli.PathFlag{
				Name:     "topology",
				Aliases:  []string{"t"},
				Usage:    "a yaml file describing the topology.",
				Category: "diagram",
			},
			&cli.PathFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "the file to write the diagram to. Defaults to stdout.",
				Category: "diagram",
			},
		},
	}
)

func diagramAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	format, err := diagram.ParseFormat(ctx.String("format"))
	if err != nil {
		return err
	}

	topology := diagram.DefaultTopology()
	if path := ctx.Path("topology"); path != "" {
		if topology, err = loadTopology(path); err != nil {
			return err
		}
	}

	log.Debug("rendering diagram",
		zap.String("name", topology.Name),
		zap.String("format", string(format)),
		zap.Int("zones", len(topology.Zones)),
	)

	generator := diagram.Generator{Format: format}

	path := ctx.Path("output")
	if path == "" {
		return generator.Generate(topology, ctx.App.Writer)
	}

	return writeFile(path, func(w io.Writer) error {
		return generator.Generate(topology, w)
	})
}

// writeFile creates path and passes it to write. Errors from closing
// the file are returned, as they may report a failed flush.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return write(f)
}

func loadTopology(path string) (diagram.Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return diagram.Topology{}, err
	}
	defer f.Close()

	return diagram.LoadTopology(f)
}

func init() {
	rootApp.Commands = append(rootApp.Commands, diagramCmd)
}
