//go:build !windows

package main

import (
	"fmt"

	"github.com/favbox/breeze/pkg/common/config"
	"github.com/favbox/breeze/pkg/network"
	"github.com/favbox/breeze/pkg/network/netpoll"
)

func transporterByName(name string) (func(*config.Options) network.Transporter, error) {
	if name == "netpoll" {
		return netpoll.NewTransporter, nil
	}
	return nil, fmt.Errorf("未知的传输器 %q", name)
}
