package command

import "github.com/bwmarrin/discordgo"

// Arg is a named argument value.
type Arg struct {
	Name  string
	Value ArgValue
}

// Args is the run-time parsed parameter record. Order follows the leaf's
// descriptor declaration order.
type Args []Arg

// Get finds an argument value by name.
func (a Args) Get(name string) (ArgValue, bool) {
	for _, arg := range a {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return ArgValue{}, false
}

// lookup resolves name and kind, producing the accessor error contract:
// missing name (unknown names included) or kind mismatch.
func (a Args) lookup(name string, want ArgKind) (ArgValue, error) {
	v, ok := a.Get(name)
	if !ok {
		return ArgValue{}, &ArgMissingError{Name: name}
	}
	if v.Kind() != want {
		return ArgValue{}, &ArgTypeError{Name: name, Want: want, Got: v.Kind()}
	}
	return v, nil
}

func (a Args) Bool(name string) (bool, error) {
	v, err := a.lookup(name, KindBool)
	if err != nil {
		return false, err
	}
	b, _ := v.Bool()
	return b, nil
}

func (a Args) Number(name string) (float64, error) {
	v, err := a.lookup(name, KindNumber)
	if err != nil {
		return 0, err
	}
	n, _ := v.Number()
	return n, nil
}

func (a Args) Integer(name string) (int64, error) {
	v, err := a.lookup(name, KindInteger)
	if err != nil {
		return 0, err
	}
	i, _ := v.Integer()
	return i, nil
}

func (a Args) String(name string) (string, error) {
	v, err := a.lookup(name, KindString)
	if err != nil {
		return "", err
	}
	s, _ := v.String()
	return s, nil
}

func (a Args) Channel(name string) (Ref[discordgo.Channel], error) {
	v, err := a.lookup(name, KindChannel)
	if err != nil {
		return Ref[discordgo.Channel]{}, err
	}
	r, _ := v.Channel()
	return r, nil
}

func (a Args) Message(name string) (Ref[discordgo.Message], error) {
	v, err := a.lookup(name, KindMessage)
	if err != nil {
		return Ref[discordgo.Message]{}, err
	}
	r, _ := v.Message()
	return r, nil
}

func (a Args) Attachment(name string) (Ref[discordgo.MessageAttachment], error) {
	v, err := a.lookup(name, KindAttachment)
	if err != nil {
		return Ref[discordgo.MessageAttachment]{}, err
	}
	r, _ := v.Attachment()
	return r, nil
}

func (a Args) User(name string) (Ref[discordgo.User], error) {
	v, err := a.lookup(name, KindUser)
	if err != nil {
		return Ref[discordgo.User]{}, err
	}
	r, _ := v.User()
	return r, nil
}

func (a Args) Role(name string) (Ref[discordgo.Role], error) {
	v, err := a.lookup(name, KindRole)
	if err != nil {
		return Ref[discordgo.Role]{}, err
	}
	r, _ := v.Role()
	return r, nil
}

func (a Args) Mention(name string) (string, error) {
	v, err := a.lookup(name, KindMention)
	if err != nil {
		return "", err
	}
	m, _ := v.Mention()
	return m, nil
}
