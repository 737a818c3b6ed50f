package generator_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-javagen/pkg/generator"
	"github.com/goliatone/go-javagen/pkg/schema"
	"github.com/goliatone/go-javagen/pkg/sink"
)

// End-to-end run through the built-in Java emitter factory.
func TestGenerate_BuiltinFactory(t *testing.T) {
	file := &schema.File{
		Name:    "acme/event_log.proto",
		Package: "acme.events",
		Options: schema.FileOptions{
			JavaPackage:        "com.acme.events",
			JavaOuterClassname: "EventLogProtos",
		},
		Messages: []schema.Message{
			{
				Name: "EventLog",
				Fields: []schema.Field{
					{Name: "id", Type: "string", Number: 1},
				},
			},
		},
	}

	mem := sink.Mem()
	gen := generator.New(generator.WithOpenSourceRuntime(true))

	outcome, err := gen.Generate(context.Background(), generator.Request{
		File:      file,
		Parameter: "immutable,mutable,annotate_code,output_list_file=files.txt",
		Sink:      mem,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	wantFiles := []string{
		"com/acme/events/EventLogProtos.java",
		"com/acme/events/MutableEventLogProtos.java",
	}
	if len(outcome.Files) != 2 || outcome.Files[0] != wantFiles[0] || outcome.Files[1] != wantFiles[1] {
		t.Fatalf("unexpected files %v", outcome.Files)
	}

	immutable, ok := mem.Content(wantFiles[0])
	if !ok || !strings.Contains(string(immutable), "public final class EventLogProtos {") {
		t.Fatalf("unexpected immutable output:\n%s", immutable)
	}
	mutable, ok := mem.Content(wantFiles[1])
	if !ok || !strings.Contains(string(mutable), "public void setId(String value)") {
		t.Fatalf("unexpected mutable output:\n%s", mutable)
	}

	meta, ok := mem.Content("com/acme/events/EventLogProtos.java.pb.meta")
	if !ok || !strings.Contains(string(meta), "acme.events.EventLog") {
		t.Fatalf("unexpected annotation metadata:\n%s", meta)
	}

	manifest, ok := mem.Content("files.txt")
	if !ok {
		t.Fatal("manifest missing")
	}
	want := wantFiles[0] + "\n" + wantFiles[1] + "\n"
	if string(manifest) != want {
		t.Fatalf("manifest mismatch:\n got %q\nwant %q", manifest, want)
	}
}
