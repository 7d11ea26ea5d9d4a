// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package backtest

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/penny-vault/pv-charts/dataframe"
	"github.com/rs/zerolog/log"
)

// timestampLayouts lists the accepted formats of a metric timestamp, tried in order
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// valueRecord holds one {"timestamp": ..., "value": ...} entry; fields are kept generic so that
// a missing field can be told apart from a null one
type valueRecord map[string]interface{}

type metricPayload struct {
	Values []valueRecord `json:"values"`
}

// LoadOutput reads the backtest output json stored at fn and merges all metrics into a
// single date indexed dataframe
func LoadOutput(fn string) (*dataframe.DataFrame, error) {
	fh, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("could not open backtest output: %w", err)
	}
	defer fh.Close()

	df, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}

	log.Info().Str("FileName", fn).Int("NumMetrics", df.ColCount()).Int("NumRows", df.Len()).Msg("loaded backtest output")
	if log.Debug().Enabled() {
		log.Debug().Msg("\n" + df.Table())
	}
	return df, nil
}

// Load parses a backtest output document of the form
//
//	{"metrics": {"<name>": {"values": [{"timestamp": "...", "value": 1.0}, ...]}, ...}}
//
// and outer joins every metric on its timestamp. Columns are named after the metric and
// ordered as the metrics appear in the document. Dates missing from a metric are NaN.
func Load(r io.Reader) (*dataframe.DataFrame, error) {
	series, err := ParseMetrics(r)
	if err != nil {
		return nil, err
	}

	dfs := make([]*dataframe.DataFrame, 0, len(series))
	for _, s := range series {
		dfs = append(dfs, s.DataFrame())
	}

	df := dataframe.Merge(dfs...)
	if err := df.Validate(); err != nil {
		return nil, err
	}

	return df, nil
}

// ParseMetrics decodes every metric of the document into a MetricSeries sorted by date
func ParseMetrics(r io.Reader) ([]*MetricSeries, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read backtest output: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, err.Error())
	}

	raw, ok := doc["metrics"]
	if trimmed := bytes.TrimSpace(raw); !ok || len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, ErrMissingMetrics
	}

	// metrics are decoded token by token to preserve the order of the keys
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, err.Error())
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: metrics must be an object", ErrMissingMetrics)
	}

	series := make([]*MetricSeries, 0)
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, err.Error())
		}

		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v in metrics", ErrMalformedJSON, tok)
		}

		var payload metricPayload
		if err := dec.Decode(&payload); err != nil {
			return nil, fmt.Errorf("%w: metric %q: %s", ErrMalformedJSON, name, err.Error())
		}

		s, err := newMetricSeries(name, payload)
		if err != nil {
			return nil, err
		}

		if idx, ok := seen[name]; ok {
			log.Warn().Str("Metric", name).Msg("metric defined more than once; keeping last definition")
			series[idx] = s
			continue
		}

		seen[name] = len(series)
		series = append(series, s)
	}

	return series, nil
}

func newMetricSeries(name string, payload metricPayload) (*MetricSeries, error) {
	s := &MetricSeries{
		Name:  name,
		Dates: make([]time.Time, 0, len(payload.Values)),
		Vals:  make([]float64, 0, len(payload.Values)),
	}

	for idx, rec := range payload.Values {
		rawTimestamp, ok := rec["timestamp"]
		if !ok || rawTimestamp == nil {
			return nil, fmt.Errorf("%w: metric %q value %d has no timestamp", ErrMissingField, name, idx)
		}

		rawValue, ok := rec["value"]
		if !ok {
			return nil, fmt.Errorf("%w: metric %q value %d has no value", ErrMissingField, name, idx)
		}

		ts, ok := rawTimestamp.(string)
		if !ok {
			return nil, fmt.Errorf("metric %q value %d: %w: %v", name, idx, ErrInvalidTimestamp, rawTimestamp)
		}

		dt, err := ParseTimestamp(ts)
		if err != nil {
			return nil, fmt.Errorf("metric %q value %d: %w", name, idx, err)
		}

		val, err := parseValue(rawValue)
		if err != nil {
			return nil, fmt.Errorf("metric %q value %d: %w", name, idx, err)
		}

		s.Dates = append(s.Dates, dt)
		s.Vals = append(s.Vals, val)
	}

	log.Debug().Str("Metric", name).Int("NumValues", s.Len()).Msg("parsed metric")
	return s.Normalize(), nil
}

// ParseTimestamp converts an ISO 8601 timestamp into a UTC time
func ParseTimestamp(ts string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if dt, err := time.Parse(layout, ts); err == nil {
			return dt.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, ts)
}

// parseValue converts a decoded metric value; null is treated as a missing observation
func parseValue(raw interface{}) (float64, error) {
	switch val := raw.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return val, nil
	case json.Number:
		return val.Float64()
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, raw)
	}
}
