package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/born-ml/layercore/internal/nn"
	"github.com/born-ml/layercore/internal/serialization"
	"github.com/born-ml/layercore/internal/tensor"
)

func NewApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run one layer over a raw float32 tensor file",
		Long: `Load a layer from a param file and a weight file (or a single model blob
with --mmap) and apply it to a channel-major little-endian float32 tensor.`,
		Args: cobra.NoArgs,
		RunE: applyHandler,
	}

	cmd.Flags().String("type", nn.BiasType, "Layer type")
	cmd.Flags().String("param", "", "Param file (text, or binary with --binary-param)")
	cmd.Flags().Bool("binary-param", false, "Read the param file as raw int32 values")
	cmd.Flags().String("model", "", "Weight file, or a model blob when --mmap is set")
	cmd.Flags().Bool("mmap", false, "Memory-map --model and read param and weights from it")
	cmd.Flags().Int("width", 0, "Input width")
	cmd.Flags().Int("height", 1, "Input height")
	cmd.Flags().Int("channels", -1, "Input channels (default: inferred from the input size)")
	cmd.Flags().String("input", "", "Input tensor file")
	cmd.Flags().String("output", "", "Output tensor file")
	cmd.Flags().Bool("inplace", false, "Use the in-place forward pass")

	for _, name := range []string{"model", "input", "output", "width"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func applyHandler(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	typeName, _ := flags.GetString("type")
	modelPath, _ := flags.GetString("model")
	useMmap, _ := flags.GetBool("mmap")
	inplace, _ := flags.GetBool("inplace")
	inputPath, _ := flags.GetString("input")
	outputPath, _ := flags.GetString("output")
	width, _ := flags.GetInt("width")
	height, _ := flags.GetInt("height")
	channels, _ := flags.GetInt("channels")

	layer, err := nn.Create(typeName)
	if err != nil {
		return err
	}

	if useMmap {
		r, err := serialization.NewMmapReader(modelPath)
		if err != nil {
			return err
		}
		// Weights alias the mapping, so it stays open until the layer is done.
		defer r.Close()

		if typeName == nn.BiasType {
			if err := checkBlob(modelPath, r); err != nil {
				return err
			}
		}

		c, err := r.Cursor()
		if err != nil {
			return err
		}
		if err := nn.Load(layer, c, c); err != nil {
			return err
		}
	} else {
		paramPath, _ := flags.GetString("param")
		binaryParam, _ := flags.GetBool("binary-param")
		if paramPath == "" {
			return errors.New("--param is required unless --mmap is set")
		}
		if err := loadFromFiles(layer, paramPath, binaryParam, modelPath); err != nil {
			return err
		}
	}

	if channels < 0 {
		channels, err = inferChannels(inputPath, width, height)
		if err != nil {
			return err
		}
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	input, err := serialization.ReadMat(bufio.NewReader(in), width, height, channels, nil)
	if err != nil {
		return err
	}

	output := input
	if inplace {
		err = layer.ForwardInplace(input)
	} else {
		output, err = layer.Forward(input)
	}
	if err != nil {
		return err
	}

	if err := writeMatFile(outputPath, output); err != nil {
		return err
	}

	slog.Info("layer applied", "type", layer.Type(), "shape", output.String(), "inplace", inplace, "output", outputPath)
	return nil
}

func loadFromFiles(layer nn.Layer, paramPath string, binaryParam bool, modelPath string) error {
	pf, err := os.Open(paramPath)
	if err != nil {
		return err
	}
	defer pf.Close()

	mf, err := os.Open(modelPath)
	if err != nil {
		return err
	}
	defer mf.Close()

	var pr serialization.ParamReader = serialization.NewTextParamReader(pf)
	if binaryParam {
		pr = serialization.NewBinaryParamReader(bufio.NewReader(pf))
	}

	return nn.Load(layer, pr, serialization.NewStreamModelReader(bufio.NewReader(mf), nil))
}

func inferChannels(path string, width, height int) (int, error) {
	plane := int64(width) * int64(height) * 4
	if plane <= 0 {
		return 0, errors.New("--channels is required when width*height is zero")
	}

	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if fi.Size()%plane != 0 {
		return 0, fmt.Errorf("input size %d is not a multiple of a %dx%d float32 plane", fi.Size(), width, height)
	}
	return int(fi.Size() / plane), nil
}

func writeMatFile(path string, m *tensor.Mat) (err error) {
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
	if err := serialization.WriteMat(w, m); err != nil {
		return err
	}
	return w.Flush()
}
