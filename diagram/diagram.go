// Package diagram renders VPC topologies as DOT or Mermaid graphs.
package diagram

import (
	"fmt"
	"io"
	"strings"

	"github.com/emicklei/dot"
)

// Format specifies the output format for the diagram.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for markdown rendering.
	FormatMermaid Format = "mermaid"
)

// ParseFormat parses a format name. The empty string yields FormatDOT.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatDOT:
		return FormatDOT, nil
	case FormatMermaid:
		return FormatMermaid, nil
	default:
		return "", fmt.Errorf("unknown diagram format: %s", s)
	}
}

// Generator renders topology diagrams.
type Generator struct {
	// Format specifies the output format. Defaults to dot.
	Format Format
}

// Generate validates t and writes its diagram to w.
func (g *Generator) Generate(t Topology, w io.Writer) error {
	if err := t.Validate(); err != nil {
		return err
	}

	graph := g.buildGraph(t)

	var output string
	if g.Format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := io.WriteString(w, output)
	return err
}

// GenerateString returns the diagram of t as a string.
func (g *Generator) GenerateString(t Topology) (string, error) {
	var sb strings.Builder
	if err := g.Generate(t, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// buildGraph wires user -> internet gateway and, per zone,
// internet gateway -> public route table -> public subnet -> nat gateway
// -> private route table -> private subnet.
//
// Clusters are kept one level deep with plain ids, the mermaid writer
// neither descends into nested subgraphs nor accepts spaces in ids.
func (g *Generator) buildGraph(t Topology) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "LR")
	graph.Attr("label", t.Name)

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})

	br := g.lineBreak()

	user := graph.Node("user").Label("User")
	user.Attr("shape", "ellipse")

	vpc := graph.Subgraph("vpc", dot.ClusterOption{}).
		Label(fmt.Sprintf("VPC %s", t.CIDR))
	igw := vpc.Node("igw").Label("Internet Gateway")

	graph.Edge(user, igw)

	for i, zone := range t.Zones {
		n := i + 1
		id := fmt.Sprintf("az%d", n)

		az := graph.Subgraph(id, dot.ClusterOption{}).Label(zone.Name)
		az.Attr("style", "rounded")

		pubSubnet := az.Node(id+"_public_subnet").
			Label(fmt.Sprintf("Public Subnet %d%s%s", n, br, zone.PublicSubnet))
		privSubnet := az.Node(id+"_private_subnet").
			Label(fmt.Sprintf("Private Subnet %d%s%s", n, br, zone.PrivateSubnet))
		natGW := az.Node(id + "_nat_gateway").
			Label(fmt.Sprintf("NAT Gateway %d", n))
		pubRT := az.Node(id + "_public_route_table").
			Label(fmt.Sprintf("Public Route Table %d", n))
		privRT := az.Node(id + "_private_route_table").
			Label(fmt.Sprintf("Private Route Table %d", n))

		graph.Edge(igw, pubRT)
		graph.Edge(pubRT, pubSubnet)
		graph.Edge(pubSubnet, natGW)
		graph.Edge(natGW, privRT)
		graph.Edge(privRT, privSubnet)
	}

	return graph
}

// lineBreak returns the line separator used within node labels.
// Mermaid labels are html escaped, so they stay on one line.
func (g *Generator) lineBreak() string {
	if g.Format == FormatMermaid {
		return " "
	}
	return "\\n"
}
