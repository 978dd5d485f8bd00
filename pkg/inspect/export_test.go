package inspect

var MySQLDSN = mysqlDSN
