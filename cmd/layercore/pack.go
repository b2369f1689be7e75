package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/layercore/internal/serialization"
)

func NewPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Write bias parameters in the streaming and in-memory formats",
		Args:  cobra.NoArgs,
		RunE:  packHandler,
	}

	cmd.Flags().String("weights", "", "Comma separated per-channel bias values, e.g. \"1,-1\"")
	cmd.Flags().String("param", "", "Param file to write")
	cmd.Flags().Bool("binary-param", false, "Write the param file as a raw int32")
	cmd.Flags().String("model", "", "Weight file to write")
	cmd.Flags().String("blob", "", "Model blob to write (param and weights in one file, for --mmap)")

	return cmd
}

func packHandler(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	raw, _ := flags.GetString("weights")
	paramPath, _ := flags.GetString("param")
	binaryParam, _ := flags.GetBool("binary-param")
	modelPath, _ := flags.GetString("model")
	blobPath, _ := flags.GetString("blob")

	if paramPath == "" && modelPath == "" && blobPath == "" {
		return errors.New("nothing to write: set --param, --model or --blob")
	}

	weights, err := parseWeights(raw)
	if err != nil {
		return err
	}

	if paramPath != "" {
		err := writeFile(paramPath, func(w *bufio.Writer) error {
			if binaryParam {
				return serialization.WriteParamBinary(w, len(weights))
			}
			return serialization.WriteParamText(w, len(weights))
		})
		if err != nil {
			return err
		}
	}

	if modelPath != "" {
		err := writeFile(modelPath, func(w *bufio.Writer) error {
			return serialization.WriteWeights(w, weights)
		})
		if err != nil {
			return err
		}
	}

	var digest string
	if blobPath != "" {
		if err := serialization.WriteBlobFile(blobPath, weights); err != nil {
			return err
		}
		sum, err := fileChecksum(blobPath)
		if err != nil {
			return err
		}
		digest = serialization.ChecksumString(sum)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "packed %d channels\n", len(weights))
	if digest != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "blob digest: %s\n", digest)
	}
	return nil
}

// fileChecksum hashes a file by streaming it, the way inspect reports the
// digest of a mapped blob.
func fileChecksum(path string) ([32]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return [32]byte{}, err
	}
	defer f.Close()
	return serialization.ComputeChecksumReader(f)
}

func parseWeights(s string) ([]float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float32{}, nil
	}

	fields := strings.Split(s, ",")
	weights := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", f, err)
		}
		weights[i] = float32(v)
	}
	return weights, nil
}

func writeFile(path string, fn func(w *bufio.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return err
	}
	return w.Flush()
}
