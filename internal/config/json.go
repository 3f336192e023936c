package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	Documents struct {
		Dir            string `json:"dir"`
		PickerStartDir string `json:"picker_start_dir"`
	} `json:"documents,omitempty"`

	API struct {
		LoadDocURL     string   `json:"load_doc_url"`
		QuestionURL    string   `json:"question_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Documents: Documents{
			Dir:            jsonCfg.Documents.Dir,
			PickerStartDir: jsonCfg.Documents.PickerStartDir,
		},
		API: API{
			LoadDocURL:     jsonCfg.API.LoadDocURL,
			QuestionURL:    jsonCfg.API.QuestionURL,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}
