package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"oopcheatsheet/internal/mathutils"
	"oopcheatsheet/internal/model"
)

// objects creates an Animal and a Dog and calls their methods.
func (s *cheatsheet) objects(_ context.Context, p *printer) error {
	animal := model.NewAnimal("Lion", 5)
	dog := model.NewDog("Buddy", 3, "Golden Retriever")

	p.printf("Animal name: %s", animal.Name())
	p.println(animal.MakeSound())

	p.printf("Dog name: %s", dog.Name())
	p.println(dog.MakeSound())
	p.println(dog.WagTail())
	return p.err
}

// overloading prints details with and without extra info, then the Dog
// variant that extends the Animal one.
func (s *cheatsheet) overloading(_ context.Context, p *printer) error {
	animal := model.NewAnimal("Lion", 5)
	dog := model.NewDog("Buddy", 3, "Golden Retriever")

	p.println(animal.Details())
	p.println(animal.DetailsWith("Wild animal"))
	p.println(dog.Details())
	return p.err
}

func (s *cheatsheet) encapsulation(_ context.Context, p *printer) error {
	person := model.NewPerson("John", 25)
	p.printf("Person name: %s", person.Name())
	return p.err
}

// polymorphism prints areas through the Shape interface only.
func (s *cheatsheet) polymorphism(ctx context.Context, p *printer) error {
	shapes := []model.Shape{
		model.NewCircle(3.0).WithPi(s.opts.Pi),
		model.NewRectangle(4.0, 5.0),
	}
	for _, sh := range shapes {
		s.printArea(ctx, p, sh)
	}
	return p.err
}

func (s *cheatsheet) printArea(ctx context.Context, p *printer, sh model.Shape) {
	trace.SpanFromContext(ctx).AddEvent("area", trace.WithAttributes(
		attribute.String("kind", sh.Kind().String()),
		attribute.Float64("area", sh.Area()),
	))
	p.println(model.DescribeArea(sh, s.opts.Precision))
}

func (s *cheatsheet) calculator(_ context.Context, p *printer) error {
	p.printf("Add(2): %d", s.calc.Add(1, 2))
	p.printf("Add(3): %d", s.calc.Add3(1, 2, 3))
	p.printf("Add(4): %d", s.calc.Add4(1, 2, 3, 4))
	p.printf("Sum: %d", s.calc.Sum(1, 2, 3, 4, 5))
	return p.err
}

// static uses package-level functions; the second division fails and is
// reported as 0.
func (s *cheatsheet) static(ctx context.Context, p *printer) error {
	p.printf("Sum: %d", mathutils.Add(10, 5))
	p.printf("Division: %d", s.divide(ctx, 10, 2))
	p.printf("Division: %d", s.divide(ctx, 10, 0))
	return p.err
}

func (s *cheatsheet) divide(ctx context.Context, a, b int) int {
	q, ok := mathutils.DivideOrZero(loggerFrom(ctx, s.log), a, b)
	if !ok {
		s.rec.DivisionError()
		trace.SpanFromContext(ctx).AddEvent("division_by_zero", trace.WithAttributes(
			attribute.Int("dividend", a),
			attribute.Int("divisor", b),
		))
	}
	return q
}
