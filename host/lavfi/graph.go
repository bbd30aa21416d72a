package lavfi

import (
	"context"
	"fmt"
	"strings"

	"github.com/xaionaro-go/avdenoise/logger"
)

// sinkPadLabel is the open output pad name of every compiled graph.
const sinkPadLabel = "out"

// Graph is a compiled filter chain: the filtergraph description together
// with the source clips whose labels name its open input pads.
type Graph struct {
	Content string
	Sources []*Clip
	Sink    *Clip
}

func (g *Graph) String() string {
	return g.Content
}

// Compile flattens the chain ending at the given clip into a filtergraph
// description. A pad feeds exactly one downstream input in libavfilter,
// so clips consumed more than once get an explicit 'split' inserted.
func Compile(
	ctx context.Context,
	sink *Clip,
) (_ret *Graph, _err error) {
	logger.Tracef(ctx, "Compile(ctx, %s)", sink)
	defer func() { logger.Tracef(ctx, "/Compile(ctx, %s): %v %v", sink, _ret, _err) }()
	if sink.IsSource() {
		return nil, fmt.Errorf("the chain is empty: '%s' is a source clip", sink)
	}

	var order []*Clip
	var sources []*Clip
	visited := map[*Clip]struct{}{}
	var visit func(c *Clip)
	visit = func(c *Clip) {
		if _, ok := visited[c]; ok {
			return
		}
		visited[c] = struct{}{}
		for _, input := range c.Inputs {
			visit(input)
		}
		if c.IsSource() {
			sources = append(sources, c)
			return
		}
		order = append(order, c)
	}
	visit(sink)

	// every consumption counts separately, a node may read one clip twice
	uses := map[*Clip]int{}
	for _, node := range order {
		for _, input := range node.Inputs {
			uses[input]++
		}
	}

	nextLeg := map[*Clip]int{}
	consume := func(c *Clip) string {
		if uses[c] <= 1 {
			return c.Label
		}
		leg := nextLeg[c]
		nextLeg[c]++
		return fmt.Sprintf("%s_%d", c.Label, leg)
	}
	splitStatement := func(c *Clip) string {
		legs := make([]string, uses[c])
		for i := range legs {
			legs[i] = fmt.Sprintf("[%s_%d]", c.Label, i)
		}
		return fmt.Sprintf("[%s]split=%d%s", c.Label, uses[c], strings.Join(legs, ""))
	}

	var statements []string
	for _, src := range sources {
		if uses[src] > 1 {
			statements = append(statements, splitStatement(src))
		}
	}
	for _, node := range order {
		out := node.Label
		if node == sink {
			out = sinkPadLabel
		}
		var statement string
		if node.Template != "" {
			statement = node.Template
			for idx, input := range node.Inputs {
				statement = strings.ReplaceAll(statement, fmt.Sprintf("{in%d}", idx), consume(input))
			}
			statement = strings.ReplaceAll(statement, "{out}", out)
			statement = strings.ReplaceAll(statement, "{id}", node.Label)
		} else {
			var sb strings.Builder
			for _, input := range node.Inputs {
				fmt.Fprintf(&sb, "[%s]", consume(input))
			}
			fmt.Fprintf(&sb, "%s[%s]", node.Expr, out)
			statement = sb.String()
		}
		statements = append(statements, statement)
		if node != sink && uses[node] > 1 {
			statements = append(statements, splitStatement(node))
		}
	}

	return &Graph{
		Content: strings.Join(statements, ";"),
		Sources: sources,
		Sink:    sink,
	}, nil
}
