package utils

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson formata o valor (ou os bytes já em JSON) para leitura em logs
func PrettyJson(in any) string {
	buffer, isBytes := in.([]byte)
	if !isBytes {
		var err error
		buffer, err = jsonAPI.Marshal(in)
		if err != nil {
			logrus.WithError(err).Debug("PrettyJson: falha ao serializar")
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		return string(buffer)
	}

	return out.String()
}
