package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cantwellc/LAS/array"
)

func NewLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout DIM [DIM...]",
		Short: "Print the row-major stride table of a shape",
		Long:  "Print the extent and stride of every axis of a shape. Dimensions may be given as separate arguments or as one comma separated list.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  layoutHandler,
	}

	return cmd
}

func layoutHandler(cmd *cobra.Command, args []string) error {
	shape, err := array.ParseShape(strings.Join(args, ","))
	if err != nil {
		return err
	}
	if err := shape.Validate(); err != nil {
		return err
	}

	strides := shape.Strides()

	var data [][]string
	for axis, extent := range shape {
		stride := "1"
		if axis < len(strides) {
			stride = strconv.Itoa(strides[axis])
		}
		data = append(data, []string{strconv.Itoa(axis), strconv.Itoa(extent), stride})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"AXIS", "EXTENT", "STRIDE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	fmt.Fprintf(cmd.OutOrStdout(), "\nrank %d, size %d\n", len(shape), shape.NumElements())
	return nil
}
