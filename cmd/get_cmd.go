package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dzjyyds666/tomlq/parse"
	"github.com/dzjyyds666/tomlq/parse/toml"
	"github.com/dzjyyds666/tomlq/pkg"
	"github.com/spf13/cobra"
)

type GetParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Key    string `json:"key"`    // 查找的key，点分路径
	Format string `json:"format"` // 输出格式，json 或 yaml
	Pretty bool   `json:"pretty"` // json 输出是否缩进
}

var getParams *GetParams

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "look up one value in a toml file by dotted key",
	Run:   getRun,
}

func init() {
	getParams = &GetParams{}
	getCmd.Flags().StringVarP(&getParams.Input, "input", "i", "", "input file path")
	getCmd.Flags().StringVarP(&getParams.Key, "key", "k", "", "dotted key, e.g. server.host")
	getCmd.Flags().StringVarP(&getParams.Format, "format", "f", "json", "output format, json or yaml")
	getCmd.Flags().BoolVarP(&getParams.Pretty, "pretty", "p", false, "indent json output")
}

func getRun(cmd *cobra.Command, args []string) {
	if len(getParams.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	if len(getParams.Key) == 0 {
		fmt.Println("no key to look up")
		return
	}
	exist, err := pkg.CheckFileExist(getParams.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	root, err := parse.File(getParams.Input)
	if err != nil {
		fmt.Println(err)
		return
	}

	n, ok := toml.Get(root, strings.Split(getParams.Key, ".")...)
	if !ok {
		fmt.Println("key not found:", getParams.Key)
		return
	}

	if err := dumpTree(os.Stdout, n, getParams.Format, getParams.Pretty); err != nil {
		fmt.Println("dump error:", err)
	}
}
