// Command flexdump reads a JSON-described node tree from a file (or
// stdin), runs CalculateLayout against it, and prints the resulting
// rectangles.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	flex "github.com/flexkit/flex"
	"github.com/flexkit/flex/internal/core/geom"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	widthFlag  float64
	heightFlag float64
)

func main() {
	root := &cobra.Command{
		Use:   "flexdump [file]",
		Short: "Compute and print a flex layout tree",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	root.Flags().Float64Var(&widthFlag, "width", 0, "available width (0 = undefined)")
	root.Flags().Float64Var(&heightFlag, "height", 0, "available height (0 = undefined)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// treeSpec is the JSON shape a node tree is read from: a style subset
// plus nested children. It exists purely as the CLI's wire format and
// has no bearing on the in-memory Node/Style model it builds.
type treeSpec struct {
	FlexDirection string     `json:"flexDirection"`
	Justify       string     `json:"justifyContent"`
	AlignItems    string     `json:"alignItems"`
	Width         *float64   `json:"width"`
	Height        *float64   `json:"height"`
	FlexGrow      *float64   `json:"flexGrow"`
	FlexShrink    *float64   `json:"flexShrink"`
	Children      []treeSpec `json:"children"`
}

func run(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("flexdump: %w", err)
	}

	var spec treeSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("flexdump: decode tree: %w", err)
	}

	cfg := flex.DefaultConfig()
	root := buildNode(cfg, spec)

	availW, availH := geom.Undefined, geom.Undefined
	if widthFlag > 0 {
		availW = widthFlag
	}
	if heightFlag > 0 {
		availH = heightFlag
	}

	flex.CalculateLayout(root, availW, availH, flex.DirectionLTR)
	printNode(root, 0)
	return nil
}

func buildNode(cfg *flex.Config, spec treeSpec) *flex.Node {
	n := flex.NewNode(cfg)
	switch spec.FlexDirection {
	case "row":
		n.SetFlexDirection(flex.FlexDirectionRow)
	case "row-reverse":
		n.SetFlexDirection(flex.FlexDirectionRowReverse)
	case "column-reverse":
		n.SetFlexDirection(flex.FlexDirectionColumnReverse)
	}
	switch spec.Justify {
	case "center":
		n.SetJustifyContent(flex.JustifyCenter)
	case "flex-end":
		n.SetJustifyContent(flex.JustifyFlexEnd)
	case "space-between":
		n.SetJustifyContent(flex.JustifySpaceBetween)
	case "space-around":
		n.SetJustifyContent(flex.JustifySpaceAround)
	}
	switch spec.AlignItems {
	case "center":
		n.SetAlignItems(flex.AlignCenter)
	case "flex-end":
		n.SetAlignItems(flex.AlignFlexEnd)
	case "flex-start":
		n.SetAlignItems(flex.AlignFlexStart)
	}
	if spec.Width != nil {
		n.SetWidth(*spec.Width)
	}
	if spec.Height != nil {
		n.SetHeight(*spec.Height)
	}
	if spec.FlexGrow != nil {
		n.SetFlexGrow(*spec.FlexGrow)
	}
	if spec.FlexShrink != nil {
		n.SetFlexShrink(*spec.FlexShrink)
	}
	for _, c := range spec.Children {
		n.AddChild(buildNode(cfg, c))
	}
	return n
}

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

func printNode(n *flex.Node, depth int) {
	label := fmt.Sprintf("x=%.0f y=%.0f w=%.0f h=%.0f",
		n.LayoutLeft(), n.LayoutTop(), n.LayoutWidth(), n.LayoutHeight())
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Println(indent + boxStyle.Render(label))
	for i := 0; i < n.ChildCount(); i++ {
		printNode(n.GetChild(i), depth+1)
	}
}
