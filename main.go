package main

import "github.com/artifactory-ops/storage-monitor/cmd"

func main() {
	cmd.Execute()
}
