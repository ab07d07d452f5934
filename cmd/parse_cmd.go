package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dzjyyds666/tomlq/parse"
	"github.com/dzjyyds666/tomlq/parse/toml"
	"github.com/dzjyyds666/tomlq/pkg"
	"github.com/spf13/cobra"
)

type ParseParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址，为空时输出到标准输出
	Format string `json:"format"` // 输出格式，json 或 yaml
	Pretty bool   `json:"pretty"` // json 输出是否缩进
}

var parseParams *ParseParams

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "parse a toml file and render it as json or yaml",
	Run:   parseRun,
}

func init() {
	parseParams = &ParseParams{}
	parseCmd.Flags().StringVarP(&parseParams.Input, "input", "i", "", "input file path")
	parseCmd.Flags().StringVarP(&parseParams.Output, "output", "o", "", "output path")
	parseCmd.Flags().StringVarP(&parseParams.Format, "format", "f", "json", "output format, json or yaml")
	parseCmd.Flags().BoolVarP(&parseParams.Pretty, "pretty", "p", false, "indent json output")
}

func parseRun(cmd *cobra.Command, args []string) {
	if len(parseParams.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(parseParams.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	root, err := parse.File(parseParams.Input)
	if err != nil {
		fmt.Println(err)
		return
	}

	out, done, err := openOutput(parseParams.Output)
	if err != nil {
		fmt.Println("open output error:", err)
		return
	}
	defer done()

	if err := dumpTree(out, root, parseParams.Format, parseParams.Pretty); err != nil {
		fmt.Println("dump error:", err)
	}
}

// openOutput resolves the output flag: empty means stdout, anything else
// is created as a file along with missing parent directories.
func openOutput(path string) (io.Writer, func(), error) {
	if len(path) == 0 {
		return os.Stdout, func() {}, nil
	}
	f, err := pkg.CreateFile(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func dumpTree(w io.Writer, n toml.Node, format string, pretty bool) error {
	switch format {
	case "", "json":
		return parse.DumpJSON(w, n, pretty)
	case "yaml", "yml":
		return parse.DumpYAML(w, n)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
