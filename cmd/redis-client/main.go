// Command redis-client runs one command against the configured server and
// prints the reply the way redis-cli does.
//
//	redis-client -conf redis.properties lpush tasks a b c
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-redis-client/config"
	"go-redis-client/interface/resp"
	"go-redis-client/lib/logger"
	"go-redis-client/redis"
	"go-redis-client/resp/reply"
)

func main() {
	confPath := flag.String("conf", "", "path of a .properties file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-conf file] command [arg ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*confPath, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "(error)", err)
		os.Exit(1)
	}
}

func run(confPath string, args []string) error {
	props := config.Default()
	if confPath != "" {
		loaded, err := config.Load(confPath)
		if err != nil {
			return err
		}
		props = loaded
	}
	if err := props.ApplyEnv(); err != nil {
		return err
	}
	if err := logger.Setup(&props.Log); err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	client, err := redis.NewFromProperties(props)
	if err != nil {
		return err
	}
	defer client.Close()

	r, err := client.Execute(context.Background(), args[0], args[1:]...)
	if err != nil {
		return err
	}
	fmt.Println(format(r, ""))
	return nil
}

func format(r resp.Reply, indent string) string {
	switch v := r.(type) {
	case *reply.StatusReply:
		return v.Status
	case *reply.IntReply:
		return "(integer) " + strconv.FormatInt(v.Code, 10)
	case *reply.DoubleReply:
		return "(double) " + strconv.FormatFloat(v.Value, 'g', -1, 64)
	case *reply.BulkReply:
		return strconv.Quote(string(v.Arg))
	case *reply.NullBulkReply, *reply.NullMultiBulkReply:
		return "(nil)"
	case *reply.MultiBulkReply:
		if len(v.Args) == 0 {
			return "(empty array)"
		}
		lines := make([]string, len(v.Args))
		for i, arg := range v.Args {
			item := "(nil)"
			if arg != nil {
				item = strconv.Quote(string(arg))
			}
			lines[i] = fmt.Sprintf("%s%d) %s", indent, i+1, item)
		}
		return strings.TrimPrefix(strings.Join(lines, "\n"), indent)
	case *reply.MultiRawReply:
		if len(v.Replies) == 0 {
			return "(empty array)"
		}
		lines := make([]string, len(v.Replies))
		for i, item := range v.Replies {
			lines[i] = fmt.Sprintf("%s%d) %s", indent, i+1, format(item, indent+"   "))
		}
		return strings.TrimPrefix(strings.Join(lines, "\n"), indent)
	}
	return string(r.ToBytes())
}
