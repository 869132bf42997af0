package assistant_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fluxbill-api/internal/application/assistant"
	"github.com/jhoicas/fluxbill-api/internal/domain"
)

// fakeLLM devuelve una respuesta fija y registra el mensaje recibido.
type fakeLLM struct {
	response string
	err      error
	calls    int
	lastUser string
}

func (f *fakeLLM) Complete(_ context.Context, _, user string) (string, error) {
	f.calls++
	f.lastUser = user
	return f.response, f.err
}

type fakeTranscriber struct {
	transcript string
	err        error
}

func (f *fakeTranscriber) TranscribeFile(_ context.Context, _ string) (string, error) {
	return f.transcript, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// PlanText
// ──────────────────────────────────────────────────────────────────────────────

// Un JSON válido del modelo pasa intacto hasta la UI.
func TestPlanText_ComandoValido(t *testing.T) {
	llm := &fakeLLM{response: `{"action":"click","target":"nav.invoices","args":{},"reply":"opening invoices"}`}
	p := assistant.NewPlanner(llm, &fakeTranscriber{})

	cmd, err := p.PlanText(context.Background(), "open invoices", "dashboard")
	require.NoError(t, err)
	assert.Equal(t, "click", cmd.Action)
	require.NotNil(t, cmd.Target)
	assert.Equal(t, "nav.invoices", *cmd.Target)
	assert.Equal(t, "opening invoices", cmd.Reply)
}

// El texto de búsqueda llega trimmed aunque el modelo lo devuelva con espacios.
func TestPlanText_TypeSeTrimmea(t *testing.T) {
	llm := &fakeLLM{response: `{"action":"type","target":"field.search","args":{"text":"  apex  "},"reply":"searching apex"}`}
	p := assistant.NewPlanner(llm, &fakeTranscriber{})

	cmd, err := p.PlanText(context.Background(), "search apex", "invoices")
	require.NoError(t, err)
	assert.Equal(t, "type", cmd.Action)
	assert.Equal(t, "apex", cmd.Args["text"])
}

// El JSON envuelto en prosa o markdown igual se extrae.
func TestPlanText_JSONEnvueltoEnProsa(t *testing.T) {
	llm := &fakeLLM{response: "Sure! Here is the command:\n```json\n{\"action\":\"click\",\"target\":\"nav.customers\",\"args\":{},\"reply\":\"ok\"}\n```"}
	p := assistant.NewPlanner(llm, &fakeTranscriber{})

	cmd, err := p.PlanText(context.Background(), "show customers", "")
	require.NoError(t, err)
	assert.Equal(t, "click", cmd.Action)
}

// Prosa pura sin JSON degrada a "none" con mensaje; no es un error.
func TestPlanText_ProsaPuraDegrada(t *testing.T) {
	llm := &fakeLLM{response: "I am just a language model and cannot help with that."}
	p := assistant.NewPlanner(llm, &fakeTranscriber{})

	cmd, err := p.PlanText(context.Background(), "sing me a song", "dashboard")
	require.NoError(t, err)
	assert.Equal(t, "none", cmd.Action)
	assert.NotEmpty(t, cmd.Reply)
}

// Campo con tipo equivocado también degrada a "none".
func TestPlanText_TipoEquivocadoDegrada(t *testing.T) {
	llm := &fakeLLM{response: `{"action":42,"reply":"ok"}`}
	p := assistant.NewPlanner(llm, &fakeTranscriber{})

	cmd, err := p.PlanText(context.Background(), "open invoices", "dashboard")
	require.NoError(t, err)
	assert.Equal(t, "none", cmd.Action)
	assert.NotEmpty(t, cmd.Reply)
}

// Una action fuera del set fijo degrada vía los guardrails del esquema.
func TestPlanText_ActionFueraDelSet(t *testing.T) {
	llm := &fakeLLM{response: `{"action":"reboot_server","target":null,"args":{},"reply":"ok"}`}
	p := assistant.NewPlanner(llm, &fakeTranscriber{})

	cmd, err := p.PlanText(context.Background(), "reboot", "dashboard")
	require.NoError(t, err)
	assert.Equal(t, "none", cmd.Action)
}

// Errores de credencial y del upstream no se degradan: suben al handler.
func TestPlanText_ErroresDeInfraSePropagan(t *testing.T) {
	for _, sentinel := range []error{domain.ErrLLMNotConfigured, domain.ErrUpstream} {
		llm := &fakeLLM{err: sentinel}
		p := assistant.NewPlanner(llm, &fakeTranscriber{})

		_, err := p.PlanText(context.Background(), "open invoices", "dashboard")
		assert.ErrorIs(t, err, sentinel)
	}
}

// El mensaje al modelo incluye la pestaña activa; vacía se reemplaza por dashboard.
func TestPlanText_PestanaActivaEnElMensaje(t *testing.T) {
	llm := &fakeLLM{response: `{"action":"none","reply":"ok"}`}
	p := assistant.NewPlanner(llm, &fakeTranscriber{})

	_, err := p.PlanText(context.Background(), "hello", "")
	require.NoError(t, err)
	assert.True(t, strings.Contains(llm.lastUser, "Active tab: dashboard"), "mensaje: %q", llm.lastUser)
}

// ──────────────────────────────────────────────────────────────────────────────
// PlanVoice
// ──────────────────────────────────────────────────────────────────────────────

// Transcript vacío (silencio) responde el fallback sin invocar al modelo.
func TestPlanVoice_SilencioNoInvocaAlModelo(t *testing.T) {
	llm := &fakeLLM{response: `{"action":"click","target":"nav.invoices","args":{},"reply":"ok"}`}
	p := assistant.NewPlanner(llm, &fakeTranscriber{transcript: ""})

	transcript, cmd, err := p.PlanVoice(context.Background(), "/tmp/voice.webm", "dashboard")
	require.NoError(t, err)
	assert.Empty(t, transcript)
	assert.Equal(t, "none", cmd.Action)
	assert.NotEmpty(t, cmd.Reply)
	assert.Zero(t, llm.calls)
}

// Con habla, el transcript alimenta el plan de texto normal.
func TestPlanVoice_TranscriptAlimentaElPlanner(t *testing.T) {
	llm := &fakeLLM{response: `{"action":"click","target":"nav.invoices","args":{},"reply":"opening invoices"}`}
	p := assistant.NewPlanner(llm, &fakeTranscriber{transcript: "open invoices"})

	transcript, cmd, err := p.PlanVoice(context.Background(), "/tmp/voice.webm", "dashboard")
	require.NoError(t, err)
	assert.Equal(t, "open invoices", transcript)
	assert.Equal(t, "click", cmd.Action)
	assert.True(t, strings.Contains(llm.lastUser, "open invoices"))
}

// Errores del transcriptor suben al handler.
func TestPlanVoice_ErrorDeTranscripcionSePropaga(t *testing.T) {
	p := assistant.NewPlanner(&fakeLLM{}, &fakeTranscriber{err: domain.ErrSTTNotConfigured})

	_, _, err := p.PlanVoice(context.Background(), "/tmp/voice.webm", "dashboard")
	assert.ErrorIs(t, err, domain.ErrSTTNotConfigured)
}
