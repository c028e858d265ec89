package cli

import (
	"github.com/javanhut/codenav/internal/logger"
	"github.com/javanhut/codenav/internal/seals"
	"github.com/javanhut/codenav/internal/versions"
)

// controller dispatches user intents from a front end into a session and
// logs each of them. Both the line console and the key navigator use it.
type controller struct {
	sess *versions.Session
	log  *logger.Logger
}

func newController(sess *versions.Session, log *logger.Logger) *controller {
	if log == nil {
		log = logger.Nop()
	}
	return &controller{sess: sess, log: log}
}

func (c *controller) previous() bool {
	from := c.sess.Current().ID
	moved := c.sess.GoToPrevious()
	c.log.LogIntent("previous", int(from), int(c.sess.Current().ID), moved)
	return moved
}

func (c *controller) next() bool {
	from := c.sess.Current().ID
	moved := c.sess.GoToNext()
	c.log.LogIntent("next", int(from), int(c.sess.Current().ID), moved)
	return moved
}

func (c *controller) reset() {
	from := c.sess.Current().ID
	c.sess.ResetToFirst()
	to := c.sess.Current().ID
	c.log.LogIntent("reset", int(from), int(to), from != to)
}

func (c *controller) save() versions.Node {
	n := c.sess.SavePending()
	c.log.LogSave(int(n.ID), int(n.PrevID), string(n.Language), seals.Generate(n.Fingerprint), len(n.Code))
	return n
}

func (c *controller) setCode(code string) {
	c.sess.SetPendingCode(code)
	c.log.Debug().Str("event", "intent").Str("intent", "set_code").Int("code_bytes", len(code)).Msg("intent handled")
}

// setLanguage parses input before handing it to the session, which
// accepts any tag.
func (c *controller) setLanguage(input string) (versions.Language, error) {
	lang, err := versions.ParseLanguage(input)
	if err != nil {
		c.log.Warn().Str("event", "intent").Str("intent", "set_language").Str("input", input).Err(err).Msg("intent rejected")
		return "", err
	}
	c.sess.SetPendingLanguage(lang)
	c.log.Debug().Str("event", "intent").Str("intent", "set_language").Str("language", string(lang)).Msg("intent handled")
	return lang, nil
}

func (c *controller) setDescription(description string) {
	c.sess.SetPendingDescription(description)
	c.log.Debug().Str("event", "intent").Str("intent", "set_description").Msg("intent handled")
}
