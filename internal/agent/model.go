package agent

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Model scores the three moves for a state.
type Model interface {
	Predict(s State) [3]float64
}

// Trainer updates a model from a batch of transitions.
type Trainer interface {
	TrainStep(batch []Transition)
}

// QTable is a tabular action-value model keyed by State.Key.
type QTable struct {
	values map[uint16][3]float64
}

// NewQTable creates an empty table; unseen states score zero for every move.
func NewQTable() *QTable {
	return &QTable{values: make(map[uint16][3]float64)}
}

// Predict returns the action values for s.
func (q *QTable) Predict(s State) [3]float64 {
	return q.values[s.Key()]
}

// Len returns the number of visited states.
func (q *QTable) Len() int {
	return len(q.values)
}

type qTableFile struct {
	Games  int                  `yaml:"games"`
	Record int                  `yaml:"record"`
	Values map[uint16][]float64 `yaml:"values"`
}

// Save writes the table to path as YAML, creating parent directories.
func (q *QTable) Save(path string, games, record int) error {
	file := qTableFile{
		Games:  games,
		Record: record,
		Values: make(map[uint16][]float64, len(q.values)),
	}
	for k, v := range q.values {
		file.Values[k] = v[:]
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("agent: cannot encode model: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("agent: cannot create model directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("agent: cannot write model %s: %w", path, err)
	}
	return nil
}

// LoadQTable reads a table written by Save, returning the stored game count
// and record alongside it.
func LoadQTable(path string) (q *QTable, games, record int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("agent: cannot read model %s: %w", path, err)
	}

	var file qTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, 0, 0, fmt.Errorf("agent: cannot parse model %s: %w", path, err)
	}

	q = NewQTable()
	for k, v := range file.Values {
		if len(v) != 3 {
			return nil, 0, 0, fmt.Errorf("agent: model %s: state %d has %d values", path, k, len(v))
		}
		q.values[k] = [3]float64{v[0], v[1], v[2]}
	}
	return q, file.Games, file.Record, nil
}

// QTrainer applies one-step Q-learning updates to a QTable.
type QTrainer struct {
	table *QTable
	lr    float64
	gamma float64
}

// NewQTrainer creates a trainer for table.
func NewQTrainer(table *QTable, lr, gamma float64) *QTrainer {
	return &QTrainer{table: table, lr: lr, gamma: gamma}
}

// TrainStep applies Q(s,a) += lr * (r + gamma*max Q(s') - Q(s,a)) to each
// transition in order. Terminal transitions do not bootstrap.
func (t *QTrainer) TrainStep(batch []Transition) {
	for _, tr := range batch {
		target := float64(tr.Reward)
		if !tr.Done {
			next := t.table.values[tr.Next.Key()]
			target += t.gamma * max(next[0], next[1], next[2])
		}

		key := tr.State.Key()
		q := t.table.values[key]
		a := tr.Action.Index()
		q[a] += t.lr * (target - q[a])
		t.table.values[key] = q
	}
}
