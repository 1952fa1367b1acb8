package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"mios/hal"
	"mios/mios/drivers/kbd"
)

func main() {
	mode := flag.String("mode", "encode", "encode|decode.")
	flag.Parse()

	var err error
	switch strings.ToLower(*mode) {
	case "encode":
		err = encode(os.Stdin, os.Stdout)
	case "decode":
		err = decode(os.Stdin, os.Stdout)
	default:
		fatalf("unknown mode: %s\nusage: kbdtrace -mode encode|decode < input", *mode)
	}
	if err != nil {
		fatalf("%s: %v", *mode, err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// encode prints the set 1 scancodes that type r's text, one key per line.
func encode(r io.Reader, w io.Writer) error {
	in := bufio.NewReader(r)
	var seq []byte
	for {
		ch, _, err := in.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		var ok bool
		if seq, ok = hal.AppendRune(seq[:0], ch); !ok {
			fmt.Fprintf(w, "%q\t-\n", ch)
			continue
		}
		fmt.Fprintf(w, "%q\t% x\n", ch, seq)
	}
}

// decode reads hex scancodes (whitespace separated) and prints each decoded key.
func decode(r io.Reader, w io.Writer) error {
	d := kbd.NewDecoder()
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		raw, err := hex.DecodeString(strings.TrimPrefix(sc.Text(), "0x"))
		if err != nil {
			return fmt.Errorf("scancode %q: %w", sc.Text(), err)
		}
		for _, b := range raw {
			k, ok := d.Feed(b)
			if !ok {
				continue
			}
			switch k.Kind {
			case kbd.Unicode:
				fmt.Fprintf(w, "%02x\tunicode %q\n", b, k.Char)
			case kbd.Raw:
				fmt.Fprintf(w, "%02x\traw %s\n", b, k.Code)
			}
		}
	}
	return sc.Err()
}
