package pool

import (
	"sync"
	"testing"
)

func TestPathBuilder_Basic(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.WriteString("Patient")
	pb.AppendMember("name")

	if got := pb.String(); got != "Patient.name" {
		t.Errorf("String() = %q; want %q", got, "Patient.name")
	}
	if pb.Len() != len("Patient.name") {
		t.Errorf("Len() = %d; want %d", pb.Len(), len("Patient.name"))
	}
}

func TestPathBuilder_AppendMemberEmpty(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.AppendMember("Bundle")
	if got := pb.String(); got != "Bundle" {
		t.Errorf("String() with empty buffer = %q; want %q", got, "Bundle")
	}
}

func TestPathBuilder_AppendIndex(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.WriteString("Bundle")
	pb.AppendMember("entry")
	pb.AppendIndex(12)
	pb.AppendMember("resource")

	if got := pb.String(); got != "Bundle.entry[12].resource" {
		t.Errorf("String() = %q; want %q", got, "Bundle.entry[12].resource")
	}
}

func TestPathBuilder_Reset(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.WriteString("Observation.value")
	pb.Reset()
	if pb.Len() != 0 {
		t.Errorf("Len() after Reset = %d; want 0", pb.Len())
	}
}

func TestPathBuilder_NilRelease(t *testing.T) {
	var pb *PathBuilder
	pb.Release() // Should not panic
}

func TestMemberPath(t *testing.T) {
	tests := []struct {
		base, name, want string
	}{
		{"", "Patient", "Patient"},
		{"Patient", "name", "Patient.name"},
		{"Patient.contact[0]", "telecom", "Patient.contact[0].telecom"},
	}
	for _, tt := range tests {
		if got := MemberPath(tt.base, tt.name); got != tt.want {
			t.Errorf("MemberPath(%q, %q) = %q; want %q", tt.base, tt.name, got, tt.want)
		}
	}
}

func TestElementPath(t *testing.T) {
	got := ElementPath("CapabilityStatement.rest[0]", "resource", 3)
	want := "CapabilityStatement.rest[0].resource[3]"
	if got != want {
		t.Errorf("ElementPath = %q; want %q", got, want)
	}
}

func TestPathBuilder_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	n := 100

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if got := ElementPath("Bundle", "entry", i); got == "" {
				t.Error("empty path")
			}
		}(i)
	}

	wg.Wait()
}

func BenchmarkElementPath(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ElementPath("Bundle.entry[0].resource", "name", i%8)
	}
}
