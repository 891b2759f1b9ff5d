package session

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bytedance/sonic"
	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/monjil99/intakeagent/form"
)

// Profile is the patchable view of the session accumulators, for hosts that
// already know respondent attributes before the conversation starts.
type Profile struct {
	Personal form.PersonalInfo `json:"personal_info"`
	Address  form.AddressInfo  `json:"address_info"`
}

// PatchOp is a single RFC 6902 operation against the Profile document.
type PatchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

var allowedOps = map[string]bool{"add": true, "replace": true, "remove": true}

// Prefill applies RFC 6902 patch operations to the personal/address
// accumulators. Paths are restricted to the known attribute pointers;
// responses are never touched. A failed prefill leaves the session
// unchanged.
func (s *Session) Prefill(ops []PatchOp) error {
	if len(ops) == 0 {
		return nil
	}
	allowed := profilePointerPaths()
	for _, op := range ops {
		if !allowedOps[op.Op] {
			return fmt.Errorf("prefill: unsupported op %q", op.Op)
		}
		if !allowed[op.Path] {
			return fmt.Errorf("prefill: path %q is not a known attribute", op.Path)
		}
	}

	profile := Profile{Personal: s.personal, Address: s.address}
	current, err := sonic.Marshal(profile)
	if err != nil {
		return fmt.Errorf("prefill: marshal profile: %w", err)
	}
	patchJSON, err := sonic.Marshal(ops)
	if err != nil {
		return fmt.Errorf("prefill: marshal ops: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return fmt.Errorf("prefill: decode patch: %w", err)
	}
	modified, err := patch.Apply(current)
	if err != nil {
		return fmt.Errorf("prefill: apply patch: %w", err)
	}
	var result Profile
	if err := sonic.Unmarshal(modified, &result); err != nil {
		return fmt.Errorf("prefill: decode profile: %w", err)
	}
	s.personal = result.Personal
	s.address = result.Address
	return nil
}

// profilePointerPaths derives the allowed JSON pointers from the Profile
// struct tags.
func profilePointerPaths() map[string]bool {
	paths := make(map[string]bool)
	profileType := reflect.TypeOf(Profile{})
	for i := 0; i < profileType.NumField(); i++ {
		section := profileType.Field(i)
		sectionTag := jsonTagName(section.Tag.Get("json"))
		if sectionTag == "" {
			continue
		}
		for j := 0; j < section.Type.NumField(); j++ {
			fieldTag := jsonTagName(section.Type.Field(j).Tag.Get("json"))
			if fieldTag == "" {
				continue
			}
			paths["/"+sectionTag+"/"+fieldTag] = true
		}
	}
	return paths
}

func jsonTagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}
