//go:build windows

package main

import (
	"fmt"

	"github.com/favbox/breeze/pkg/common/config"
	"github.com/favbox/breeze/pkg/network"
)

func transporterByName(name string) (func(*config.Options) network.Transporter, error) {
	return nil, fmt.Errorf("当前平台不支持传输器 %q", name)
}
