package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/layercore/internal/nn"
	"github.com/born-ml/layercore/internal/serialization"
)

func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect BLOB",
		Short: "Show the channel count and weights stored in a bias model blob",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectHandler,
	}
}

func inspectHandler(cmd *cobra.Command, args []string) error {
	r, err := serialization.NewMmapReader(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	if err := checkBlob(args[0], r); err != nil {
		return err
	}

	c, err := r.Cursor()
	if err != nil {
		return err
	}

	layer := nn.NewBias()
	if err := nn.Load(layer, c, c); err != nil {
		return err
	}

	sum, err := r.Checksum()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "digest:   %s\n", serialization.ChecksumString(sum))
	fmt.Fprintf(out, "channels: %d\n", layer.Channels())
	fmt.Fprintf(out, "trailing: %d bytes\n\n", c.Remaining())

	var data [][]string
	for q, v := range layer.Weights().Data() {
		data = append(data, []string{strconv.Itoa(q), strconv.FormatFloat(float64(v), 'g', -1, 32)})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"CHANNEL", "BIAS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

// checkBlob verifies that a mapped bias blob holds as many weight bytes as it
// declares. The cursor path does not check sizes itself.
func checkBlob(name string, r *serialization.MmapReader) error {
	probe, err := r.Cursor()
	if err != nil {
		return err
	}
	if probe.Remaining() < 4 {
		return fmt.Errorf("%s: blob too small: %d bytes", name, probe.Remaining())
	}
	if n := int(probe.ReadInt32()); n < 0 || probe.Remaining() < n*4 {
		return fmt.Errorf("%s: blob declares %d channels but holds %d weight bytes", name, n, probe.Remaining())
	}
	return nil
}
