package visitor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/patterns/observability"
)

const (
	EventShapeVisited  observability.EventType = "visitor.shape"
	EventShapeRejected observability.EventType = "visitor.rejected"
)

// Demo runs three visitors over a drawing and shows constructor validation.
func Demo(ctx context.Context, w io.Writer, obs observability.Observer) error {
	circle, err := NewCircle(1)
	if err != nil {
		return err
	}
	rect, err := NewRectangle(3, 4)
	if err != nil {
		return err
	}
	tri, err := NewTriangle(3, 4, 5)
	if err != nil {
		return err
	}

	drawing := (&Drawing{Name: "sketch"}).Add(circle, rect, tri)

	var (
		describe  DescribeVisitor
		area      AreaVisitor
		perimeter PerimeterVisitor
	)
	for _, v := range []Visitor{&describe, &area, &perimeter} {
		drawing.Accept(v)
	}

	for _, line := range describe.Lines {
		fmt.Fprintf(w, "  %s\n", line)
		observability.Emit(ctx, obs, EventShapeVisited, observability.LevelVerbose, "visitor.Demo",
			map[string]any{"shape": line})
	}
	fmt.Fprintf(w, "%s: %d shapes, area %.2f, perimeter %.2f\n", drawing.Name, area.Count, area.Total, perimeter.Total)

	if _, err := NewTriangle(1, 2, 10); err != nil {
		if !errors.Is(err, ErrInvalidShape) {
			return err
		}
		fmt.Fprintf(w, "rejected: %v\n", err)
		observability.Emit(ctx, obs, EventShapeRejected, observability.LevelWarning, "visitor.Demo",
			map[string]any{"error": err.Error()})
	}
	return nil
}
