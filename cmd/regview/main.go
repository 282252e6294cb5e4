package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/regbits/regbits/bitfield"
	"github.com/regbits/regbits/csr/riscv"
)

// layoutEntry describes one built-in register layout the tool can decode.
type layoutEntry struct {
	desc  string
	c     *bitfield.Compiled[uint64]
	names []string
}

var layouts = map[string]layoutEntry{
	"riscv/mstatus": {
		desc:  "machine status register (RV64)",
		c:     riscv.MStatusLayout,
		names: riscv.MStatusFieldNames[:],
	},
	"riscv/fcsr": {
		desc:  "floating-point control and status register",
		c:     riscv.FCSRLayout,
		names: riscv.FCSRFieldNames[:],
	},
}

func main() {
	var (
		layoutName  = flag.String("layout", "", "Layout to decode against (see -list)")
		value       = flag.String("value", "", "Register value, hex or decimal")
		list        = flag.Bool("list", false, "List built-in layouts and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *list {
		listLayouts()
		return
	}

	if *layoutName == "" {
		fmt.Fprintln(os.Stderr, "Usage: regview -layout <name> -value <hex>")
		fmt.Fprintln(os.Stderr, "       regview -layout <name> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       regview -list")
		os.Exit(1)
	}

	entry, ok := layouts[*layoutName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q (try -list)\n", *layoutName)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*layoutName, entry); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*layoutName, entry, *value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listLayouts() {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Built-in layouts:")
	for _, name := range names {
		e := layouts[name]
		fmt.Printf("  %-16s %s (%d fields, %d-bit)\n",
			name, e.desc, e.c.FieldCount(), bitfield.WordBits[uint64]())
	}
}

func run(name string, entry layoutEntry, valueStr string) error {
	if valueStr == "" {
		return fmt.Errorf("no value given (use -value)")
	}
	v, err := parseValue(valueStr)
	if err != nil {
		return fmt.Errorf("parse value: %w", err)
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Print(decode(name, entry, v, styled))
	return nil
}

// parseValue accepts 0x-prefixed hex or plain decimal.
func parseValue(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return strconv.ParseUint(rest, 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

var (
	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	bitsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	setStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// decode renders the per-field breakdown of v against the layout. When
// styled is false the output is plain text.
func decode(name string, entry layoutEntry, v uint64, styled bool) string {
	plain := lipgloss.NewStyle()
	fname, bits, set, dim := plain, plain, plain, plain
	if styled {
		fname, bits, set, dim = nameStyle, bitsStyle, setStyle, dimStyle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s = %#x\n\n", name, v)

	for i := 0; i < entry.c.FieldCount(); i++ {
		id := bitfield.ID(i)
		f := entry.c.Field(id)
		fv := (v & entry.c.Mask(id)) >> f.LSB

		span := bits.Render(fmt.Sprintf("[%2d:%2d]", f.MSB, f.LSB))
		if f.LSB == f.MSB {
			span = bits.Render(fmt.Sprintf("[%5d]", f.LSB))
		}

		val := dim.Render(fmt.Sprintf("%#x", fv))
		if fv != 0 {
			val = set.Render(fmt.Sprintf("%#x", fv))
		}

		fmt.Fprintf(&b, "  %s %-10s %s  %s\n",
			span, fname.Render(entry.names[i]), val, dim.Render(f.Access.String()))
	}
	return b.String()
}
