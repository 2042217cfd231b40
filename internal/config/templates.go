package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "router":
		return routerTemplate, nil
	case "dealer":
		return dealerTemplate, nil
	case "pair":
		return pairTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const routerTemplate = `socket_type = "ROUTER"
routing_id = "router-1"
recv_routing_id = true
`

const dealerTemplate = `socket_type = "DEALER"
routing_id = "dealer-1"
recv_routing_id = false
`

const pairTemplate = `socket_type = "PAIR"
`
