package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa o valor com indentação; bytes são tratados como JSON já serializado
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao serializar JSON")
			return ""
		}
	}

	// jsoniter só indenta com espaços
	var out bytes.Buffer
	if err := stdjson.Indent(&out, buffer, "", "\t"); err != nil {
		logrus.WithError(err).Warn("Conteúdo não é um JSON válido")
		return string(buffer)
	}

	return out.String()
}
