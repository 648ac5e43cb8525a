package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/foomo/atomlint"
	"github.com/foomo/atomlint/config"
	"github.com/foomo/atomlint/feed"
)

func main() {
	flagConfig := flag.String("config", "", "path to a yaml config file")
	flagJSON := flag.Bool("json", false, "print the report as json")
	flagHelp := flag.Bool("help", false, "show help")
	flag.Parse()

	var conf *config.Config
	if *flagConfig != "" {
		loadedConf, errGet := config.Get(*flagConfig)
		if errGet != nil {
			fmt.Println("can not load config", errGet)
			os.Exit(1)
		}
		conf = loadedConf
	} else {
		conf, _ = config.Load(nil)
	}
	if len(flag.Args()) == 1 {
		conf.Feed = flag.Arg(0)
	}

	if conf.Feed == "" || *flagHelp {
		fmt.Println("foomo atomlint - validate the entries of an atom feed")
		fmt.Println("usage", os.Args[0], "http://server.com/feed.xml")
		os.Exit(1)
	}

	u, errParse := url.Parse(conf.Feed)
	if errParse != nil {
		fmt.Println("can not parse feed url", errParse)
		os.Exit(1)
	}
	if u.Scheme == "" {
		conf.Feed = "file://" + conf.Feed
	}

	entries, errFetch := feed.FetchEntries(conf.Feed, conf.Agent)
	if errFetch != nil {
		fmt.Println("could not load feed", errFetch)
		os.Exit(2)
	}

	report := atomlint.Lint(conf, entries)
	if *flagJSON {
		jsonBytes, errJSON := report.JSON()
		if errJSON != nil {
			fmt.Println("could not render report", errJSON)
			os.Exit(2)
		}
		fmt.Println(string(jsonBytes))
	} else {
		report.Print(os.Stdout)
	}
	if !report.OK() {
		os.Exit(3)
	}
}
