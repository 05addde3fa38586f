package metrics

import "testing"

// BenchmarkCollector_LineChecked measures the overhead of recording a
// verdict (atomic operations).
func BenchmarkCollector_LineChecked(b *testing.B) {
	c := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.LineChecked(i%2 == 0)
	}
}

// BenchmarkCollector_JSON measures JSON export overhead.
func BenchmarkCollector_JSON(b *testing.B) {
	c := New()
	c.LineChecked(true)
	c.BytesRead(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.JSON()
	}
}

// BenchmarkNilCollector verifies nil-safe no-ops have zero overhead.
func BenchmarkNilCollector(b *testing.B) {
	var c *Collector
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.LineChecked(true)
		c.BytesRead(64)
	}
}
