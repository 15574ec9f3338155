package status

import "github.com/ib-77/trytuple/pkg/rop"

// flagOf and messageOf treat any payload they cannot read, including one
// whose methods panic, as carrying no signal.

func flagOf(payload any, field string) (value bool, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			value, ok = false, false
		}
	}()

	if rop.IsNil(payload) {
		return false, false
	}

	switch p := payload.(type) {
	case Flagger:
		return p.StatusFlag(field)
	case map[string]any:
		value, ok = p[field].(bool)
		return value, ok
	case map[string]bool:
		value, ok = p[field]
		return value, ok
	}
	return false, false
}

func messageOf(payload any) (msg string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			msg, ok = "", false
		}
	}()

	switch p := payload.(type) {
	case Messenger:
		return p.StatusMessage()
	case map[string]any:
		msg, ok = p[MessageField].(string)
		return msg, ok
	case map[string]string:
		msg, ok = p[MessageField]
		return msg, ok
	}
	return "", false
}
