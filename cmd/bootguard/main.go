/*
Copyright © 2025 Industrial Edge Works
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/industrial-edge/bootguard/pkg/cli"

func main() {
	cli.Execute()
}
