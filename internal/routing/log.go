package routing

import "github.com/sirupsen/logrus"

var Log = logrus.New()
