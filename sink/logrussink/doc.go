// Package logrussink lets lazily built messages be written by logrus.
package logrussink
