// Command boron is a thin CLI consumer of the cbor/cbor/json packages:
// inspect a CBOR message, decode it to extended-JSON, or encode
// extended-JSON back to CBOR bytes.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jwolf02/boron-go/cbor"
	cborjson "github.com/jwolf02/boron-go/cbor/json"
)

// InspectCmd implements "boron inspect".
type InspectCmd struct {
	Input string `arg:"" help:"0x-prefixed hex, or a path to a CBOR file."`
}

func (c *InspectCmd) Run() error {
	data, err := parseBytesOrLoadFile(c.Input)
	if err != nil {
		return err
	}
	m := cbor.NewDynamicModel()
	if _, err := cbor.Decode(data, m); err != nil {
		return err
	}
	fmt.Println(m.Root().Inspect())
	return nil
}

// DecodeCmd implements "boron decode".
type DecodeCmd struct {
	Input  string `arg:"" help:"0x-prefixed hex, or a path to a CBOR file."`
	Packed bool   `short:"p" help:"Compact (no whitespace) JSON output."`
}

func (c *DecodeCmd) Run() error {
	data, err := parseBytesOrLoadFile(c.Input)
	if err != nil {
		return err
	}
	m := cbor.NewDynamicModel()
	if _, err := cbor.Decode(data, m); err != nil {
		return err
	}
	out, err := cborjson.Encode(m.Root(), cborjson.Extended, !c.Packed)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// EncodeCmd implements "boron encode".
type EncodeCmd struct {
	Input string `arg:"" help:"Extended-JSON text, or a path to a file containing it."`
}

func (c *EncodeCmd) Run() error {
	text, err := textOrLoadFile(c.Input)
	if err != nil {
		return err
	}
	m := cbor.NewDynamicModel()
	root, err := cborjson.Decode([]byte(text), cborjson.Extended, m)
	if err != nil {
		return err
	}
	out := cbor.NewGrowingOutputBuffer()
	if err := cbor.Encode(root, out); err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(out.Bytes()))
	return nil
}

// CLI defines boron's subcommands, one struct field per verb in kong's
// convention (the same pattern cborgen/main.go uses for its own flags).
type CLI struct {
	Inspect InspectCmd `cmd:"" help:"Decode INPUT and print a human-readable tree."`
	Decode  DecodeCmd  `cmd:"" help:"Decode INPUT to extended-JSON."`
	Encode  EncodeCmd  `cmd:"" help:"Encode extended-JSON INPUT to CBOR bytes (hex on stdout)."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("boron"),
		kong.Description("Inspect, decode and encode RFC 8949 CBOR messages."),
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "boron:", err)
		os.Exit(int(cbor.Code(err)))
	}
}

// parseBytesOrLoadFile accepts either 0x-prefixed hex or a file path,
// mirroring the original CLI's input convention.
func parseBytesOrLoadFile(arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "0x") {
		return hex.DecodeString(arg[2:])
	}
	return os.ReadFile(arg)
}

// textOrLoadFile accepts either literal extended-JSON text or a path to a
// file containing it.
func textOrLoadFile(arg string) (string, error) {
	if strings.HasPrefix(arg, "{") || strings.HasPrefix(arg, "[") || strings.HasPrefix(arg, "\"") {
		return arg, nil
	}
	if _, err := os.Stat(arg); err == nil {
		b, err := os.ReadFile(arg)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return arg, nil
}
