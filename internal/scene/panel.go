package scene

import (
	"fmt"
	"strconv"

	"stellate/internal/core"
	"stellate/internal/params"
)

// Name identifies the scene on the control panel.
func (s *Scene) Name() string { return "stellate" }

// Parameters describes the committed values and generation progress.
func (s *Scene) Parameters() core.ParameterSnapshot {
	cfg := s.store.Config()
	st := s.sched.State()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Fractal",
			Params: []core.Parameter{
				intParam(string(params.FieldEpoch), "Epoch", cfg.Epoch),
				intParam(string(params.FieldSize), "Size", int(cfg.Size)),
				floatParam(string(params.FieldStellation), "Stellation", cfg.Stellation),
				intParam(string(params.FieldStepDelay), "Animation time", int(cfg.StepDelay)),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				textParam("phase", "Phase", st.Phase.String()),
				textParam("level", "Level", fmt.Sprintf("%d/%d", st.Level+1, max(st.Epoch, 1))),
				intParam("triangles", "Triangles", s.registry.Len()),
			},
		},
	}}
}

// ParameterControls lists the adjustable fields with their panel ranges.
func (s *Scene) ParameterControls() []core.ParameterControl {
	labels := map[params.Field]string{
		params.FieldEpoch:      "Epoch",
		params.FieldSize:       "Size",
		params.FieldStellation: "Stellation",
		params.FieldStepDelay:  "Animation time",
	}
	var out []core.ParameterControl
	for _, f := range params.Fields() {
		b, _ := params.FieldBounds(f)
		typ := core.ParamTypeInt
		if f == params.FieldStellation {
			typ = core.ParamTypeFloat
		}
		out = append(out, core.ParameterControl{
			Key:    string(f),
			Label:  labels[f],
			Type:   typ,
			Step:   b.Step,
			Min:    b.Min,
			Max:    b.Max,
			HasMin: true,
			HasMax: true,
		})
	}
	return out
}

// SetIntParameter implements core.IntParameterSetter.
func (s *Scene) SetIntParameter(key string, value int) bool {
	return s.Request(params.Field(key), float64(value)) == nil
}

// SetFloatParameter implements core.FloatParameterSetter.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	return s.Request(params.Field(key), value) == nil
}

// ResetParameters implements core.ParameterResetter.
func (s *Scene) ResetParameters() bool {
	return s.Reset() == nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
