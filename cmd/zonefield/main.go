/* ==================================================================================== *\
     main.go

     CLI entry point for zonefield. Dispatch style (log.SetFlags(0), a
     switch over os.Args[1], per-mode flag.FlagSet, usage() helpers using
     println) is carried over from the teacher's main.go/args.go.
\* ==================================================================================== */

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Emeline-1/zonefield/config"
	"github.com/Emeline-1/zonefield/manager"
	"github.com/Emeline-1/zonefield/pos"
	"github.com/Emeline-1/zonefield/zone"
)

func usage() {
	println("\nUsage of zonefield:\n")
	println("zonefield has two modes:")
	println("  - dump: build a zone field from a descriptor source and print it.")
	println("  - repl: build a zone field, then answer zone_of queries interactively.\n")
	println("Type")
	println("  zonefield [mode] -h")
	println("for further information on each mode.\n")
}

func main() {
	log.SetFlags(0)
	if len(os.Args) == 1 {
		usage()
		return
	}

	switch command := os.Args[1]; command {
	case "dump":
		runDump(os.Args[2:])
	case "repl":
		runRepl(os.Args[2:])
	case "-h", "--help":
		usage()
	default:
		log.Println("Unknown command:", command)
		log.Println("Type 'zonefield -h' for help.")
	}
}

// usageDescriptorFlags wires the three descriptor-source flags shared by
// both subcommands: a single JSON file, a directory of JSON files, or a
// sqlite3 database.
func usageDescriptorFlags(cmd *flag.FlagSet) (file, dir, sqlitePath *string) {
	file = cmd.String("file", "", "A single JSON descriptor file")
	dir = cmd.String("dir", "", "A directory of *.json descriptor files (parsed concurrently)")
	sqlitePath = cmd.String("sqlite", "", "A sqlite3 database with a zones table")
	return
}

// resolveDescriptors resolves exactly one of -file/-dir/-sqlite into a
// descriptor slice, in priority order.
func resolveDescriptors(file, dir, sqlitePath string) ([]zone.Descriptor, error) {
	set := 0
	for _, v := range []string{file, dir, sqlitePath} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of -file, -dir, -sqlite must be set")
	}

	switch {
	case file != "":
		d, err := config.LoadFile(file)
		if err != nil {
			return nil, err
		}
		return []zone.Descriptor{d}, nil
	case dir != "":
		return config.LoadDir(dir)
	default:
		return config.NewSqliteLoader(sqlitePath).Load()
	}
}

func runDump(args []string) {
	cmd := flag.NewFlagSet("dump", flag.ExitOnError)
	file, dir, sqlitePath := usageDescriptorFlags(cmd)
	axisOrderFlag := cmd.String("axis-order", "", "Comma-separated axis permutation, e.g. 1,0,2 (defaults to identity)")
	cmd.Parse(args)

	descriptors, err := resolveDescriptors(*file, *dir, *sqlitePath)
	if err != nil {
		log.Fatal("[dump]: ", err)
	}

	axisOrder, err := parseAxisOrder(*axisOrderFlag)
	if err != nil {
		log.Fatal("[dump]: ", err)
	}

	m, err := manager.Build(descriptors, axisOrder)
	if err != nil {
		log.Fatal("[dump]: ", err)
	}

	printDump(m)
}

func runRepl(args []string) {
	cmd := flag.NewFlagSet("repl", flag.ExitOnError)
	file, dir, sqlitePath := usageDescriptorFlags(cmd)
	axisOrderFlag := cmd.String("axis-order", "", "Comma-separated axis permutation, e.g. 1,0,2 (defaults to identity)")
	cmd.Parse(args)

	descriptors, err := resolveDescriptors(*file, *dir, *sqlitePath)
	if err != nil {
		log.Fatal("[repl]: ", err)
	}

	axisOrder, err := parseAxisOrder(*axisOrderFlag)
	if err != nil {
		log.Fatal("[repl]: ", err)
	}

	m, err := manager.Build(descriptors, axisOrder)
	if err != nil {
		log.Fatal("[repl]: ", err)
	}

	fmt.Println("zonefield repl -- enter space-separated coordinates, or 'quit'")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}

		p, err := parsePosition(line)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}

		z := m.ZoneOf(p)
		if z == nil {
			fmt.Println("(no zone)")
			continue
		}
		fmt.Println(z)
	}
}

func parsePosition(line string) (pos.Position, error) {
	fields := strings.Fields(line)
	coords := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return pos.Position{}, fmt.Errorf("bad coordinate %q: %w", f, err)
		}
		coords[i] = v
	}
	return pos.FromSlice(coords), nil
}

func parseAxisOrder(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	order := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad axis-order element %q: %w", p, err)
		}
		order[i] = v
	}
	return order, nil
}

// printDump reproduces the output of the original driver scripts
// (region_1.py/region_2.py/test.py): the zone table, the overlap list,
// the tree, its average/max depth and leaf count, then one fixed query.
func printDump(m *manager.Manager) {
	fmt.Println("---- Zones ----")
	for i := 0; i < m.Len(); i++ {
		fmt.Printf("%d: %s\n", i, m.Get(i))
	}

	fmt.Println("\n---- Overlaps ----")
	overlaps := m.OverlappingZones()
	if len(overlaps) == 0 {
		fmt.Println("(none)")
	}
	for _, o := range overlaps {
		fmt.Printf("%s (%s): %s\n", o.Name, o.Type, o.Box)
	}

	fmt.Println("\n---- Name clusters ----")
	for _, c := range m.NameClusters() {
		fmt.Printf("%s -> %s\n", c.Name, strings.Join(c.Children, ", "))
	}

	fmt.Println("\n---- Neighbor clusters ----")
	for _, c := range m.NeighborClusters() {
		fmt.Println(strings.Join(c, ", "))
	}

	fmt.Println("\n---- Search tree ----")
	m.ShowTree(os.Stdout)
	fmt.Printf("max depth: %d, average depth: %.2f, leaves: %d\n", m.MaxDepth(), m.AverageDepth(), m.LeafCount())

	if m.Len() > 0 && m.Get(0).BaseBox.Origin.Len() == 3 {
		fmt.Println("\n---- Sample query ----")
		sample := pos.New(-1441, 2, -1441)
		z := m.ZoneOf(sample)
		if z == nil {
			fmt.Printf("%s -> (no zone)\n", sample)
		} else {
			fmt.Printf("%s -> %s\n", sample, z)
		}
	}
}
