// Command goh48 is a small shell around the goh48 library: cube algebra,
// format conversion, pruning-table generation and solving. Table files are
// kept under the configured table directory, named <solver>h<h>k<k>, and are
// generated on demand when solve does not find one.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cubelab/goh48"
)

type args struct {
	cfg      config
	cube     string
	perm     string
	cubestr  string
	format   string
	fin      string
	fout     string
	moves    string
	trans    string
	nisstype string
	min      int
	max      int
	optimal  int
	maxsols  int64
}

type command struct {
	name string
	exec func(*args) error
}

var commands = []command{
	{"compose", composeExec},
	{"inverse", inverseExec},
	{"applymoves", applyMovesExec},
	{"applytrans", applyTransExec},
	{"frommoves", fromMovesExec},
	{"readcube", readCubeExec},
	{"writecube", writeCubeExec},
	{"convertcube", convertCubeExec},
	{"datasize", dataSizeExec},
	{"datainfo", dataInfoExec},
	{"gendata", genDataExec},
	{"solve", solveExec},
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var cmd *command
	for i := range commands {
		if commands[i].name == os.Args[1] {
			cmd = &commands[i]
			break
		}
	}
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	var a args
	var configPath string
	var verbose bool
	fset := flag.NewFlagSet(cmd.name, flag.ExitOnError)
	fset.StringVar(&configPath, "config", "", "path to the configuration file")
	fset.BoolVar(&verbose, "v", false, "enable debug logging")
	fset.StringVar(&a.cube, "cube", "", "cube in H48 format")
	fset.StringVar(&a.perm, "perm", "", "permutation cube in H48 format")
	fset.StringVar(&a.cubestr, "cubestr", "", "cube string in the given format")
	fset.StringVar(&a.format, "format", "H48", "cube format (H48 or LST)")
	fset.StringVar(&a.fin, "fin", "", "input cube format")
	fset.StringVar(&a.fout, "fout", "", "output cube format")
	fset.StringVar(&a.moves, "moves", "", "move sequence")
	fset.StringVar(&a.trans, "trans", "", "transformation (e.g. \"rotation UF\")")
	solverFlag := fset.String("solver", "", "solver name")
	optionsFlag := fset.String("options", "", "solver options (\"h;k;maxdepth\")")
	fset.StringVar(&a.nisstype, "nisstype", "", "niss type")
	fset.IntVar(&a.min, "m", 0, "minimum number of moves")
	fset.IntVar(&a.max, "M", 20, "maximum number of moves")
	fset.IntVar(&a.optimal, "O", -1, "optimal tolerance, negative to disable")
	fset.Int64Var(&a.maxsols, "n", 1, "maximum number of solutions")
	fset.Parse(os.Args[2:])

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}
	if *solverFlag != "" {
		cfg.Solver = *solverFlag
	}
	if *optionsFlag != "" {
		cfg.Options = *optionsFlag
	}
	a.cfg = cfg

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	goh48.SetLogger(log)

	if err := cmd.exec(&a); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func usage() {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.name
	}
	fmt.Fprintf(os.Stderr, "usage: goh48 <command> [options]\ncommands: %s\n",
		strings.Join(names, " "))
}

func readCubeArg(a *args) (goh48.Cube, error) {
	if a.cube == "" {
		return goh48.Cube{}, errors.New("missing -cube")
	}
	return goh48.ReadCube("H48", a.cube)
}

func printCube(c goh48.Cube) error {
	s, err := goh48.WriteCube("H48", c)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func composeExec(a *args) error {
	c, err := readCubeArg(a)
	if err != nil {
		return err
	}
	p, err := goh48.ReadCube("H48", a.perm)
	if err != nil {
		return err
	}
	res, err := goh48.Compose(c, p)
	if err != nil {
		return err
	}
	return printCube(res)
}

func inverseExec(a *args) error {
	c, err := readCubeArg(a)
	if err != nil {
		return err
	}
	res, err := goh48.Inverse(c)
	if err != nil {
		return err
	}
	return printCube(res)
}

func applyMovesExec(a *args) error {
	c, err := readCubeArg(a)
	if err != nil {
		return err
	}
	res, err := goh48.ApplyMoves(c, a.moves)
	if err != nil {
		return err
	}
	return printCube(res)
}

func applyTransExec(a *args) error {
	c, err := readCubeArg(a)
	if err != nil {
		return err
	}
	res, err := goh48.ApplyTrans(c, a.trans)
	if err != nil {
		return err
	}
	return printCube(res)
}

func fromMovesExec(a *args) error {
	res, err := goh48.FromMoves(a.moves)
	if err != nil {
		return err
	}
	return printCube(res)
}

func readCubeExec(a *args) error {
	c, err := goh48.ReadCube(a.format, a.cubestr)
	if err != nil {
		return err
	}
	return printCube(c)
}

func writeCubeExec(a *args) error {
	c, err := readCubeArg(a)
	if err != nil {
		return err
	}
	s, err := goh48.WriteCube(a.format, c)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func convertCubeExec(a *args) error {
	s, err := goh48.Convert(a.fin, a.fout, a.cubestr)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func dataSizeExec(a *args) error {
	size, err := goh48.DataSize(a.cfg.Solver, a.cfg.Options)
	if err != nil {
		return err
	}
	fmt.Println(size)
	return nil
}

func dataInfoExec(a *args) error {
	buf, err := os.ReadFile(tablePath(&a.cfg))
	if err != nil {
		return err
	}
	return goh48.DataInfo(buf)
}

// tablePath names the table file for the configured solver and options,
// e.g. tables/h48h0k4.
func tablePath(cfg *config) string {
	name := cfg.Solver
	if fields := strings.Split(cfg.Options, ";"); len(fields) == 3 {
		name = fmt.Sprintf("%sh%sk%s", cfg.Solver,
			strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]))
	}
	return filepath.Join(cfg.TableDir, name)
}

func genDataExec(a *args) error {
	_, err := generateTable(&a.cfg)
	return err
}

func generateTable(cfg *config) ([]byte, error) {
	size, err := goh48.DataSize(cfg.Solver, cfg.Options)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	written, err := goh48.GenData(cfg.Solver, cfg.Options, buf)
	if err != nil {
		return nil, err
	}
	if written != size {
		return nil, goh48.ErrTableSizeMismatch
	}

	path := tablePath(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, err
		}
		return nil, goh48.ErrIOOutOfSpace
	}
	fmt.Fprintf(os.Stderr, "table written to %s\n", path)
	return buf, nil
}

func solveExec(a *args) error {
	c, err := readCubeArg(a)
	if err != nil {
		return err
	}

	var buf []byte
	if a.cfg.Solver == "h48" {
		buf, err = os.ReadFile(tablePath(&a.cfg))
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "table file not found, generating it (this can take a while)")
			buf, err = generateTable(&a.cfg)
		}
		if err != nil {
			return err
		}
	}

	sols, err := goh48.Solve(c, a.cfg.Solver, a.cfg.Options, a.nisstype,
		a.min, a.max, a.maxsols, a.optimal, buf)
	if err != nil {
		return err
	}
	if len(sols) == 0 {
		fmt.Fprintln(os.Stderr, "no solutions found")
		return nil
	}
	for _, s := range sols {
		fmt.Println(s)
	}
	return nil
}
