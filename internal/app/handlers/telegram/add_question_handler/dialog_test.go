package add_question_handler

import (
	"testing"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

func TestMultipleChoiceDialog(t *testing.T) {
	d := NewDialogs()
	d.Begin(1)

	if _, ok := d.Text(1, "текст до выбора типа", "готово"); ok {
		t.Fatal("Текст не должен приниматься до выбора типа")
	}
	if _, ok := d.ChooseKind(1, model.KindMultipleChoice); !ok {
		t.Fatal("ChooseKind не принят")
	}

	steps := []struct {
		input string
		check func(Reply)
	}{
		{"Столица Франции?", func(r Reply) {
			if r.Draft.Step != StepOption || r.Draft.Prompt != "Столица Франции?" {
				t.Errorf("После текста вопроса: %+v", r)
			}
		}},
		{"Берлин", nil},
		{"ГОТОВО", func(r Reply) {
			if !r.NeedOptions {
				t.Errorf("Ожидалось требование второго варианта: %+v", r)
			}
		}},
		{"Париж", nil},
		{"готово", func(r Reply) {
			if r.Draft.Step != StepCorrect || len(r.Draft.Options) != 2 {
				t.Errorf("После завершения вариантов: %+v", r)
			}
		}},
		{"3", func(r Reply) {
			if !r.BadNumber || r.Done {
				t.Errorf("Номер 3 должен быть отклонён: %+v", r)
			}
		}},
		{"2", func(r Reply) {
			if !r.Done || r.CorrectIndex != 1 || r.Draft.Options[1] != "Париж" {
				t.Errorf("Ожидалось завершение с индексом 1: %+v", r)
			}
		}},
	}
	for _, s := range steps {
		r, ok := d.Text(1, s.input, "готово")
		if !ok {
			t.Fatalf("Ввод %q не принят", s.input)
		}
		if s.check != nil {
			s.check(r)
		}
	}

	if d.Active(1) {
		t.Error("Диалог должен завершиться")
	}
}

func TestTrueFalseDialog(t *testing.T) {
	d := NewDialogs()
	d.Begin(7)
	d.ChooseKind(7, model.KindTrueFalse)

	r, ok := d.Text(7, "Вода мокрая", "готово")
	if !ok || r.Draft.Step != StepTrueFalse {
		t.Fatalf("Ожидался шаг выбора ответа: %+v", r)
	}
	if _, ok := d.Text(7, "true", "готово"); ok {
		t.Error("На шаге true/false текст не принимается")
	}

	r, ok = d.ChooseTrueFalse(7, false)
	if !ok || !r.Done || r.CorrectIndex != model.TrueFalseIndex(false) || r.Draft.Kind != model.KindTrueFalse {
		t.Errorf("ChooseTrueFalse = %+v, %v", r, ok)
	}
	if d.Active(7) {
		t.Error("Диалог должен завершиться")
	}
}

func TestCancelDialog(t *testing.T) {
	d := NewDialogs()
	d.Begin(3)
	d.Cancel(3)
	if _, ok := d.ChooseKind(3, model.KindTrueFalse); ok {
		t.Error("После отмены диалог не должен продолжаться")
	}
}
