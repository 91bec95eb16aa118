package metrics

// Recorder recibe las métricas de las operaciones del dominio.
// Se define como port para que el dominio no dependa de Prometheus.
type Recorder interface {
	ObserveOperation(op, outcome string)
	SetRecordCount(n int)
}

// Nop descarta todo.
type Nop struct{}

func (Nop) ObserveOperation(string, string) {}
func (Nop) SetRecordCount(int)              {}
