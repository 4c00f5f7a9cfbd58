package profiler

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMetric(t *testing.T) {
	p := New()
	p.RecordMetric("mad", 4)
	p.RecordMetric("mad", 1)
	p.RecordMetric("mad", 7)

	m := p.Snapshot().Metrics["mad"]
	assert.Equal(t, int64(3), m.Count)
	assert.Equal(t, 1.0, m.Min)
	assert.Equal(t, 7.0, m.Max)
	assert.InDelta(t, 4.0, m.Avg(), 1e-12)
}

func TestRecordDurationConcurrent(t *testing.T) {
	p := New()
	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(d time.Duration) {
			defer wg.Done()
			p.RecordDuration("inpaint", d)
		}(time.Duration(i) * time.Millisecond)
	}
	wg.Wait()

	op := p.Snapshot().Operations["inpaint"]
	assert.Equal(t, int64(8), op.Count)
	assert.Equal(t, time.Millisecond, op.Min)
	assert.Equal(t, 8*time.Millisecond, op.Max)
	assert.Equal(t, 4500*time.Microsecond, op.Avg())
}

func TestStartOperation(t *testing.T) {
	p := New()
	done := p.StartOperation("decode")
	done()

	op, ok := p.Snapshot().Operations["decode"]
	require.True(t, ok)
	assert.Equal(t, int64(1), op.Count)
}

func TestReport(t *testing.T) {
	p := New()
	p.RecordMetric("pixels", 10)
	p.RecordMetric("filled", 3)
	p.RecordDuration("inpaint", time.Millisecond)

	var buf bytes.Buffer
	p.Report(&buf)
	out := buf.String()

	assert.Contains(t, out, "METRICS:")
	assert.Contains(t, out, "OPERATION TIMINGS:")
	assert.Contains(t, out, "inpaint: avg=1ms")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("filled")), bytes.Index(buf.Bytes(), []byte("pixels")))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.5 KB", formatBytes(1536))
	assert.Equal(t, "2.0 MB", formatBytes(2*1024*1024))
}
